package cart

import "sync"

// Selection tracks which cart lines the user intends to check out. It is
// UI-local state, never persisted to the server, and always a subset of the
// line ids currently held by the cart store: any id orphaned by a wholesale
// replace must be pruned, not silently kept.
type Selection struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds the id if absent and removes it if present, returning whether
// the id is selected afterwards
func (s *Selection) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Add selects the id. Re-adding an already-selected id is a no-op.
func (s *Selection) Add(id string) {
	s.mu.Lock()
	s.ids[id] = struct{}{}
	s.mu.Unlock()
}

// Remove deselects the id if present
func (s *Selection) Remove(id string) {
	s.mu.Lock()
	delete(s.ids, id)
	s.mu.Unlock()
}

// SelectAll replaces the selection with exactly the given ids. Total
// replacement rather than incremental union, so a stale selection
// self-corrects when the cart shrank since last render.
func (s *Selection) SelectAll(ids []string) {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}

	s.mu.Lock()
	s.ids = next
	s.mu.Unlock()
}

// ClearAll empties the selection
func (s *Selection) ClearAll() {
	s.mu.Lock()
	s.ids = make(map[string]struct{})
	s.mu.Unlock()
}

// Prune drops every selected id not present in valid. Called after each
// wholesale cart replacement.
func (s *Selection) Prune(valid []string) {
	keep := make(map[string]struct{}, len(valid))
	for _, id := range valid {
		keep[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// IsSelected reports whether the id is currently selected
func (s *Selection) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids (unordered)
func (s *Selection) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// Count returns the number of selected ids
func (s *Selection) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
