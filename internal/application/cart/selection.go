package cart

import (
	"github.com/storefront/cartsync/internal/domain/cart"
)

// SelectionService owns the UI-local checkout selection. It never performs
// network I/O; it only reads the cart snapshot to keep the selection a
// subset of the lines that actually exist.
type SelectionService struct {
	runtimes *Registry
}

// NewSelectionService creates a new SelectionService
func NewSelectionService(runtimes *Registry) *SelectionService {
	return &SelectionService{runtimes: runtimes}
}

// Toggle flips the selection state of one cart line
func (s *SelectionService) Toggle(sess Session, itemID string) (*CartView, error) {
	rt := s.runtimes.Get(sess.UserID)

	if _, ok := rt.items.Get(itemID); !ok {
		return nil, cart.ErrItemNotFound
	}
	rt.selection.Toggle(itemID)
	return newCartView(rt), nil
}

// SetAll selects every current cart line or clears the selection. Select-all
// is a total replacement with the current line ids, not an incremental
// union, so it self-corrects if the cart shrank since last render.
func (s *SelectionService) SetAll(sess Session, selected bool) *CartView {
	rt := s.runtimes.Get(sess.UserID)

	if selected {
		rt.selection.SelectAll(rt.items.IDs())
	} else {
		rt.selection.ClearAll()
	}
	return newCartView(rt)
}

// Preselect resolves a product-id navigation hint to its cart line and adds
// it to the selection, idempotently. A hint naming a product that is not in
// the cart is ignored; the hint is best-effort navigation state, not a
// command.
func (s *SelectionService) Preselect(sess Session, productID string) *CartView {
	rt := s.runtimes.Get(sess.UserID)

	if item, ok := rt.items.FindByProduct(productID); ok {
		rt.selection.Add(item.ID)
	}
	return newCartView(rt)
}
