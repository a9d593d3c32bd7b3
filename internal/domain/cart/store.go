package cart

import "sync"

// Store is the authoritative local view of one user's cart. It is a pure
// state container: no operation here performs network I/O, and it is mutated
// only with outcomes already confirmed by the remote cart service.
//
// The store is replaced wholesale after every successful fetch. There is no
// partial merge; the server response always overrides local state.
type Store struct {
	mu    sync.RWMutex
	items []LineItem
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{items: make([]LineItem, 0)}
}

// Replace overwrites the entire cart with a fresh server response. The slice
// is copied so the caller cannot mutate held state.
func (s *Store) Replace(items []LineItem) {
	next := make([]LineItem, len(items))
	copy(next, items)

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()
}

// Items returns a copy of the current cart lines in display order
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the line with the given id, if present
func (s *Store) Get(id string) (LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// FindByProduct returns the line referencing the given product, if present
func (s *Store) FindByProduct(productID string) (LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Product.ProductID == productID {
			return item, true
		}
	}
	return LineItem{}, false
}

// IDs returns the ids of all current lines
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.items))
	for _, item := range s.items {
		ids = append(ids, item.ID)
	}
	return ids
}

// RemoveByID removes a single line after a confirmed server-side delete,
// ahead of the next refetch
func (s *Store) RemoveByID(id string) {
	s.RemoveByIDs([]string{id})
}

// RemoveByIDs is the bulk variant of RemoveByID
func (s *Store) RemoveByIDs(ids []string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if _, ok := drop[item.ID]; !ok {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// Clear empties the cart view. Called when the session becomes anonymous so
// one user's cart never leaks into the next session.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = s.items[:0]
	s.mu.Unlock()
}

// Len returns the number of lines currently held
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
