package handoff

import (
	"context"
	"sync"
	"time"

	"github.com/storefront/cartsync/internal/domain/cart"
)

// entry holds a stored selection with its expiration
type entry struct {
	productIDs []string
	expiresAt  time.Time
}

// InMemorySelectionStore implements cart.SelectionStore with an in-memory
// map. Suitable for single-instance deployments and testing; selections do
// not survive a process restart.
type InMemorySelectionStore struct {
	mu        sync.RWMutex
	entries   map[string]entry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemorySelectionStore creates a new in-memory selection store.
// It starts a background goroutine to clean up expired entries.
func NewInMemorySelectionStore() *InMemorySelectionStore {
	store := &InMemorySelectionStore{
		entries:  make(map[string]entry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Save stores the product ids for the user with a TTL
func (s *InMemorySelectionStore) Save(ctx context.Context, userID string, productIDs []string, ttl time.Duration) error {
	ids := make([]string, len(productIDs))
	copy(ids, productIDs)

	s.mu.Lock()
	s.entries[userID] = entry{
		productIDs: ids,
		expiresAt:  time.Now().Add(ttl),
	}
	s.mu.Unlock()

	return nil
}

// Load returns the stored product ids, or an empty slice if none
func (s *InMemorySelectionStore) Load(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[userID]
	if !exists || time.Now().After(e.expiresAt) {
		return []string{}, nil
	}

	out := make([]string, len(e.productIDs))
	copy(out, e.productIDs)
	return out, nil
}

// Clear removes the stored selection
func (s *InMemorySelectionStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.entries, userID)
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine and releases resources.
// Safe to call multiple times.
func (s *InMemorySelectionStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (s *InMemorySelectionStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup removes expired entries from the store
func (s *InMemorySelectionStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for userID, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, userID)
		}
	}
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemorySelectionStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemorySelectionStore implements SelectionStore
var _ cart.SelectionStore = (*InMemorySelectionStore)(nil)
