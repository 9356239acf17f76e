package services

import "sync"

// InflightGuard serializes external calls per key: each form allows at most
// one submission in flight, and a second submit while one is pending is a
// no-op. Callers check TryBegin at entry and must End on every exit path.
type InflightGuard struct {
	mu   sync.Mutex
	busy map[string]bool
}

func NewInflightGuard() *InflightGuard {
	return &InflightGuard{busy: make(map[string]bool)}
}

// TryBegin marks key busy. It returns false, without changing anything, if a
// call for key is already in flight.
func (g *InflightGuard) TryBegin(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy[key] {
		return false
	}
	g.busy[key] = true
	return true
}

// End clears the busy mark for key.
func (g *InflightGuard) End(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, key)
}
