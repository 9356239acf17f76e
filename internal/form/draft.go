package form

import "strings"

// MaxInterests bounds the interest tag list.
const MaxInterests = 5

// CommitResult reports what happened to an attempted interest commit. Drops
// are not surfaced to the user, but callers and tests can observe them here.
type CommitResult int

const (
	InterestAdded CommitResult = iota
	InterestDroppedEmpty
	InterestDroppedFull
	InterestDroppedDuplicate
)

// Draft is the transient, unsaved working copy of a profile being edited in
// the multi-step form. It lives only for the duration of the setup flow and
// is discarded without trace unless explicitly saved.
type Draft struct {
	Step        Step
	Name        string
	PhotoURL    string
	Designation string
	Phone       string
	Address     string
	Email       string
	Interests   []string
}

// NewDraft starts a draft at the first step with the session email prefilled.
func NewDraft(email string) *Draft {
	return &Draft{
		Step:      StepBasicInfo,
		Email:     email,
		Interests: []string{},
	}
}

// Next advances one step. Past the last step it is a no-op.
func (d *Draft) Next() bool {
	next, ok := d.Step.Apply(EventNext)
	d.Step = next
	return ok
}

// Back retreats one step. Past the first step it is a no-op.
func (d *Draft) Back() bool {
	prev, ok := d.Step.Apply(EventBack)
	d.Step = prev
	return ok
}

// CommitInterest appends the trimmed value to the interest list, subject to
// the guards: the list holds at most MaxInterests entries and duplicates
// (case-sensitive exact match) are rejected. A failed guard drops the value
// silently; the result tells the caller which guard fired. The scratch input
// is owned by the caller and is expected to be cleared on every non-empty
// attempt regardless of outcome.
func (d *Draft) CommitInterest(raw string) CommitResult {
	value := strings.TrimSpace(raw)
	if value == "" {
		return InterestDroppedEmpty
	}
	if len(d.Interests) >= MaxInterests {
		return InterestDroppedFull
	}
	for _, existing := range d.Interests {
		if existing == value {
			return InterestDroppedDuplicate
		}
	}
	d.Interests = append(d.Interests, value)
	return InterestAdded
}

// RemoveInterest deletes the entry equal to value, preserving the relative
// order of the rest. It reports whether anything was removed.
func (d *Draft) RemoveInterest(value string) bool {
	for i, existing := range d.Interests {
		if existing == value {
			d.Interests = append(d.Interests[:i], d.Interests[i+1:]...)
			return true
		}
	}
	return false
}
