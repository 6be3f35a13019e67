package cart

import (
	"sync"
	"time"
)

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry maps opaque session keys to carts and evicts idle sessions. It
// never persists anything; a restart empties every cart.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Session returns the cart for the given key, creating it on first use, and
// refreshes the idle timer.
func (r *Registry) Session(key string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[key]
	if !ok {
		e = &entry{store: NewStore()}
		r.sessions[key] = e
	}
	e.lastSeen = r.now()
	return e.store
}

// Purge drops sessions idle for longer than maxIdle and reports how many were
// removed.
func (r *Registry) Purge(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for key, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
