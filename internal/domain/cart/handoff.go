package cart

import (
	"context"
	"time"
)

// SelectionStore persists the checkout selection across the payment redirect
// boundary. The selection is stored as product identifiers, not line ids,
// because line ids may be regenerated by the server between handoff and
// reconciliation. The key is written before navigating to the payment flow
// and cleared only after a successful post-checkout clear.
type SelectionStore interface {
	// Save stores the product ids for the user with a TTL
	Save(ctx context.Context, userID string, productIDs []string, ttl time.Duration) error

	// Load returns the stored product ids, or an empty slice if none
	Load(ctx context.Context, userID string) ([]string, error)

	// Clear removes the stored selection
	Clear(ctx context.Context, userID string) error

	// Close closes the store and releases resources
	Close() error
}

// HandoffConfig holds configuration for checkout selection persistence
type HandoffConfig struct {
	// TTL bounds how long an in-flight checkout selection survives.
	// Default: 24 hours.
	TTL time.Duration
}

// DefaultHandoffConfig returns the default handoff configuration
func DefaultHandoffConfig() HandoffConfig {
	return HandoffConfig{
		TTL: 24 * time.Hour,
	}
}
