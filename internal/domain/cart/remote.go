package cart

import "context"

// RemoteCart is the contract with the remote cart service, the single source
// of truth for cart contents. Every mutating call reports confirmation only;
// callers must follow a successful mutation with a full refetch rather than
// trusting the mutation response for the new state, because the server may
// apply side effects (stock clamping, stale-item pruning) a narrow response
// would not surface.
type RemoteCart interface {
	// FetchItems retrieves the full cart for the session credential.
	// Returns ErrRemoteUnauthenticated when the credential is rejected.
	FetchItems(ctx context.Context, credential string) ([]LineItem, error)

	// AddItem creates a cart line for the product (server assigns the id)
	AddItem(ctx context.Context, credential, productID string) error

	// UpdateQuantity sets the quantity of an existing line. Quantity 0 is not
	// part of the server contract; decrement-to-zero must use DeleteItem.
	UpdateQuantity(ctx context.Context, credential, id string, quantity int64) error

	// DeleteItem removes a single cart line
	DeleteItem(ctx context.Context, credential, id string) error

	// Clear removes cart entries scoped to the given product identifiers,
	// or all entries when none are given
	Clear(ctx context.Context, credential string, productIDs []string) error

	// FetchOrders retrieves the order history for the session credential
	FetchOrders(ctx context.Context, credential string) ([]Order, error)
}
