package checkout

import "sync"

// Store hands out one Flow per session id. The hook factory builds the
// completion callback for a given session (clearing its cart, raising the
// order-complete alert).
type Store struct {
	mu      sync.RWMutex
	flows   map[string]*Flow
	hookFor func(sessionID string) func()
}

func NewStore(hookFor func(sessionID string) func()) *Store {
	return &Store{
		flows:   make(map[string]*Flow),
		hookFor: hookFor,
	}
}

func (s *Store) Get(sessionID string) *Flow {
	s.mu.RLock()
	f, ok := s.flows[sessionID]
	s.mu.RUnlock()
	if ok {
		return f
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.flows[sessionID]; ok {
		return f
	}

	var hook func()
	if s.hookFor != nil {
		hook = s.hookFor(sessionID)
	}
	f = NewFlow(hook)
	s.flows[sessionID] = f
	return f
}

// Reset discards a session's flow so a new checkout can begin.
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.flows, sessionID)
}
