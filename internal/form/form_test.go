package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepApply(t *testing.T) {
	tests := []struct {
		name  string
		start Step
		ev    Event
		want  Step
		ok    bool
	}{
		{"next from first", StepBasicInfo, EventNext, StepContact, true},
		{"next from middle", StepContact, EventNext, StepInterests, true},
		{"next past last is rejected", StepInterests, EventNext, StepInterests, false},
		{"back from last", StepInterests, EventBack, StepContact, true},
		{"back from middle", StepContact, EventBack, StepBasicInfo, true},
		{"back past first is rejected", StepBasicInfo, EventBack, StepBasicInfo, false},
		{"invalid step never advances", Step(0), EventNext, Step(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.start.Apply(tt.ev)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestStepStaysInRangeForAnySequence(t *testing.T) {
	// Exhaustive walk over all event sequences up to length 8.
	var walk func(t *testing.T, d *Draft, depth int)
	walk = func(t *testing.T, d *Draft, depth int) {
		require.True(t, d.Step.Valid(), "step %d out of range", d.Step)
		if depth == 0 {
			return
		}
		for _, ev := range []Event{EventNext, EventBack} {
			copied := *d
			if ev == EventNext {
				copied.Next()
			} else {
				copied.Back()
			}
			walk(t, &copied, depth-1)
		}
	}
	walk(t, NewDraft("a@b.c"), 8)
}

func TestNewDraft(t *testing.T) {
	d := NewDraft("jane@example.com")
	assert.Equal(t, StepBasicInfo, d.Step)
	assert.Equal(t, "jane@example.com", d.Email)
	assert.Empty(t, d.Interests)
}

func TestCommitInterest(t *testing.T) {
	d := NewDraft("")

	assert.Equal(t, InterestAdded, d.CommitInterest("  reading "))
	assert.Equal(t, []string{"reading"}, d.Interests)

	assert.Equal(t, InterestDroppedDuplicate, d.CommitInterest("reading"))
	assert.Equal(t, []string{"reading"}, d.Interests)

	// Case-sensitive match: a different casing is a new entry.
	assert.Equal(t, InterestAdded, d.CommitInterest("Reading"))

	assert.Equal(t, InterestDroppedEmpty, d.CommitInterest("   "))
	assert.Len(t, d.Interests, 2)
}

func TestCommitInterestFull(t *testing.T) {
	d := NewDraft("")
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		require.Equal(t, InterestAdded, d.CommitInterest(v))
	}

	got := d.CommitInterest("f")
	assert.Equal(t, InterestDroppedFull, got)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, d.Interests)
}

func TestRemoveInterest(t *testing.T) {
	d := NewDraft("")
	for _, v := range []string{"hiking", "chess", "piano"} {
		require.Equal(t, InterestAdded, d.CommitInterest(v))
	}

	assert.True(t, d.RemoveInterest("chess"))
	assert.Equal(t, []string{"hiking", "piano"}, d.Interests)

	assert.False(t, d.RemoveInterest("chess"))
	assert.Equal(t, []string{"hiking", "piano"}, d.Interests)
}
