package services

import (
	"sync"

	"github.com/onboard/app/internal/form"
)

// DraftService holds one in-progress profile draft per session. Drafts are
// in-memory only; they vanish on restart and are discarded on logout or save,
// never persisted on their own. All reads and mutations go through the
// service lock: two tabs on one session may post concurrently, and the draft
// itself is not safe to share.
type DraftService struct {
	mu     sync.Mutex
	drafts map[string]*form.Draft
}

func NewDraftService() *DraftService {
	return &DraftService{
		drafts: make(map[string]*form.Draft),
	}
}

// Update runs fn against the session's draft while holding the service lock,
// creating the draft at the first step with the session email prefilled if
// needed. The draft pointer must not escape fn.
func (s *DraftService) Update(sessionID, email string, fn func(*form.Draft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.draft(sessionID, email))
}

// Snapshot returns a private copy of the session's draft, safe to read while
// other requests keep mutating the original.
func (s *DraftService) Snapshot(sessionID, email string) form.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(sessionID, email)
	copied := *d
	copied.Interests = append([]string(nil), d.Interests...)
	return copied
}

// Discard drops the session's draft, if any.
func (s *DraftService) Discard(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}

// draft is the get-or-create lookup; callers must hold mu.
func (s *DraftService) draft(sessionID, email string) *form.Draft {
	if d, ok := s.drafts[sessionID]; ok {
		return d
	}
	d := form.NewDraft(email)
	s.drafts[sessionID] = d
	return d
}
