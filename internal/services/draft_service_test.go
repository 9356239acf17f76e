package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onboard/app/internal/form"
)

func TestDraftGetOrCreate(t *testing.T) {
	s := NewDraftService()

	d := s.Snapshot("sess-1", "jane@example.com")
	assert.Equal(t, form.StepBasicInfo, d.Step)
	assert.Equal(t, "jane@example.com", d.Email)

	s.Update("sess-1", "jane@example.com", func(d *form.Draft) {
		d.Name = "Jane"
	})
	assert.Equal(t, "Jane", s.Snapshot("sess-1", "jane@example.com").Name)

	other := s.Snapshot("sess-2", "bob@example.com")
	assert.Equal(t, "bob@example.com", other.Email)
	assert.Empty(t, other.Name)
}

func TestDraftSnapshotIsDetached(t *testing.T) {
	s := NewDraftService()

	s.Update("sess-1", "jane@example.com", func(d *form.Draft) {
		d.CommitInterest("Hiking")
	})
	snap := s.Snapshot("sess-1", "jane@example.com")

	s.Update("sess-1", "jane@example.com", func(d *form.Draft) {
		d.RemoveInterest("Hiking")
		d.CommitInterest("Cooking")
	})

	assert.Equal(t, []string{"Hiking"}, snap.Interests)
	assert.Equal(t, []string{"Cooking"}, s.Snapshot("sess-1", "jane@example.com").Interests)
}

func TestDraftConcurrentUpdates(t *testing.T) {
	s := NewDraftService()

	var wg sync.WaitGroup
	for i := 0; i < form.MaxInterests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Update("sess-1", "jane@example.com", func(d *form.Draft) {
				d.CommitInterest(fmt.Sprintf("tag-%d", i))
			})
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Snapshot("sess-1", "jane@example.com").Interests, form.MaxInterests)
}

func TestDraftDiscard(t *testing.T) {
	s := NewDraftService()

	s.Update("sess-1", "jane@example.com", func(d *form.Draft) {
		d.Name = "Jane"
	})

	s.Discard("sess-1")

	fresh := s.Snapshot("sess-1", "jane@example.com")
	assert.Empty(t, fresh.Name)
}

func TestInflightGuard(t *testing.T) {
	g := NewInflightGuard()

	assert.True(t, g.TryBegin("k"))
	assert.False(t, g.TryBegin("k"))
	assert.True(t, g.TryBegin("other"))

	g.End("k")
	assert.True(t, g.TryBegin("k"))
}
