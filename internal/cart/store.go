package cart

import (
	"sync"

	"loomline-be/internal/metrics"
)

// Store hands out one Cart per session id. Carts are created lazily on
// first access and never shared between sessions.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
	mx    *metrics.Store
}

func NewStore(mx *metrics.Store) *Store {
	return &Store{
		carts: make(map[string]*Cart),
		mx:    mx,
	}
}

// Get returns the cart for the given session, creating it if needed.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock.
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c = New()
	s.carts[sessionID] = c
	return c
}

// Mutated records a cart mutation for reporting.
func (s *Store) Mutated() {
	if s.mx != nil {
		s.mx.CartMutations.Inc()
	}
}

// Drop forgets a session's cart entirely (session reset).
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
