package form

// Step is one of the three ordered pages of the profile-completion form.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepContact
	StepInterests
)

// Event is a navigation request against the step machine.
type Event int

const (
	EventNext Event = iota
	EventBack
)

func (s Step) Valid() bool {
	return s >= StepBasicInfo && s <= StepInterests
}

// Index reports the 1-based position of the step, for templates and progress
// rendering.
func (s Step) Index() int {
	return int(s)
}

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic-info"
	case StepContact:
		return "contact"
	case StepInterests:
		return "interests"
	default:
		return "invalid"
	}
}

// Apply returns the step reached from s by ev. Transitions past either end of
// the form are rejected: the returned bool is false and the step is unchanged.
// An invalid starting step is never advanced.
func (s Step) Apply(ev Event) (Step, bool) {
	if !s.Valid() {
		return s, false
	}
	switch ev {
	case EventNext:
		if s < StepInterests {
			return s + 1, true
		}
	case EventBack:
		if s > StepBasicInfo {
			return s - 1, true
		}
	}
	return s, false
}
