package cart

import "sync"

// Store maps anonymous session ids to their cart managers. Carts live in
// process memory only; a restart loses them.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Manager
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Manager)}
}

// Get returns the cart for the session, creating an empty one on first use.
func (s *Store) Get(sessionID string) *Manager {
	s.mu.RLock()
	m, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return m
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.carts[sessionID]; ok {
		return m
	}
	m = NewManager()
	s.carts[sessionID] = m
	return m
}
