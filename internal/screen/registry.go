package screen

import (
	"sync"
	"time"
)

// Registry holds one list screen per authenticated session token.
type Registry struct {
	mu      sync.RWMutex
	screens map[string]*List
	factory func() *List
}

// NewRegistry creates a registry; factory builds a fresh screen for a
// session seen for the first time.
func NewRegistry(factory func() *List) *Registry {
	return &Registry{
		screens: make(map[string]*List),
		factory: factory,
	}
}

// GetOrCreate returns the screen bound to the session token, creating
// it on first use.
func (r *Registry) GetOrCreate(token string) *List {
	r.mu.RLock()
	l, ok := r.screens[token]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.screens[token]; ok {
		return l
	}
	l = r.factory()
	r.screens[token] = l
	return l
}

// Get returns the screen bound to the session token, if any.
func (r *Registry) Get(token string) (*List, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.screens[token]
	return l, ok
}

// Delete drops the screen bound to the session token.
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.screens, token)
}

// Count returns the number of live screens.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.screens)
}

// Sweep evicts screens idle longer than the threshold and returns how
// many were dropped. Screens are cheap session state; an evicted one is
// simply rebuilt on the next request.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for token, l := range r.screens {
		if l.LastTouch().Before(cutoff) {
			delete(r.screens, token)
			evicted++
		}
	}
	return evicted
}
