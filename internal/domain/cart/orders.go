package cart

import "sync"

// OrderStore holds the last fetched order history with the same
// wholesale-replace discipline as the cart store.
type OrderStore struct {
	mu     sync.RWMutex
	orders []Order
}

// NewOrderStore creates an empty order store
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make([]Order, 0)}
}

// Replace overwrites the held order history with a fresh server response
func (s *OrderStore) Replace(orders []Order) {
	next := make([]Order, len(orders))
	copy(next, orders)

	s.mu.Lock()
	s.orders = next
	s.mu.Unlock()
}

// Orders returns a copy of the held order history
func (s *OrderStore) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Clear empties the held order history
func (s *OrderStore) Clear() {
	s.mu.Lock()
	s.orders = s.orders[:0]
	s.mu.Unlock()
}
