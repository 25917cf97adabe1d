package alert

import "sync"

// Registry hands out one Notifier per session id, mirroring how each
// storefront view owns its own toast state.
type Registry struct {
	mu        sync.RWMutex
	notifiers map[string]*Notifier
}

func NewRegistry() *Registry {
	return &Registry{notifiers: make(map[string]*Notifier)}
}

func (r *Registry) Get(sessionID string) *Notifier {
	r.mu.RLock()
	n, ok := r.notifiers[sessionID]
	r.mu.RUnlock()
	if ok {
		return n
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.notifiers[sessionID]; ok {
		return n
	}

	n = NewNotifier()
	r.notifiers[sessionID] = n
	return n
}
