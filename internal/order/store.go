package order

import "sync"

// Store holds the client-side order collection. All mutations replace the
// whole slice by value, so readers never observe a half-updated order.
type Store struct {
	mu     sync.RWMutex
	orders []Order
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new collection wholesale.
func (s *Store) Replace(orders []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

// Snapshot returns a copy of the current collection.
func (s *Store) Snapshot() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
