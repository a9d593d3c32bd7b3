package cart

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/storefront/cartsync/internal/domain/cart"
)

// SyncService keeps per-user cart runtimes consistent with the remote cart
// service. Every mutation follows the mutate-then-refetch pattern: the
// mutation call reports confirmation only, and an unconditional full refetch
// brings local state up to server truth, including server-side effects
// (stock clamping, stale-item pruning) the mutation response would not carry.
type SyncService struct {
	remote   cart.RemoteCart
	runtimes *Registry
	logger   *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(remote cart.RemoteCart, runtimes *Registry, logger *zap.Logger) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{
		remote:   remote,
		runtimes: runtimes,
		logger:   logger,
	}
}

// Refresh fetches the cart from the server and replaces local state. Without
// an authenticated session it is a no-op, not an error: anonymous users have
// no remote cart. A 401 from the server means the remote session expired; it
// is suppressed (handled by credential re-issuance elsewhere) and the local
// runtime is reset so a stale cart is never shown.
func (s *SyncService) Refresh(ctx context.Context, sess Session) (*CartView, error) {
	rt := s.runtimes.Get(sess.UserID)
	if !sess.Authenticated() {
		return newCartView(rt), nil
	}

	if err := s.refetch(ctx, rt, sess); err != nil {
		if errors.Is(err, cart.ErrRemoteUnauthenticated) {
			s.logger.Debug("cart refresh skipped, remote session expired",
				zap.String("user_id", sess.UserID))
			rt.reset()
			return newCartView(rt), nil
		}
		return nil, err
	}
	return newCartView(rt), nil
}

// AddItem adds one unit of the product to the cart
func (s *SyncService) AddItem(ctx context.Context, sess Session, productID string) (*CartView, error) {
	if productID == "" {
		return nil, cart.ErrInvalidProduct
	}
	rt := s.runtimes.Get(sess.UserID)

	if err := s.remote.AddItem(ctx, sess.Token, productID); err != nil {
		return nil, err
	}
	if err := s.refetch(ctx, rt, sess); err != nil {
		return nil, err
	}
	return newCartView(rt), nil
}

// IncrementItem raises the line quantity by one. The increment is rejected
// locally, without a request, when the last-synced snapshot shows no stock
// headroom; the snapshot may be stale, and the server still has the final
// word when it is.
func (s *SyncService) IncrementItem(ctx context.Context, sess Session, itemID string) (*CartView, error) {
	rt := s.runtimes.Get(sess.UserID)

	item, ok := rt.items.Get(itemID)
	if !ok {
		return nil, cart.ErrItemNotFound
	}
	if !item.CanIncrement() {
		return nil, cart.ErrInsufficientStock
	}

	if err := s.remote.UpdateQuantity(ctx, sess.Token, itemID, item.Quantity+1); err != nil {
		return nil, err
	}
	if err := s.refetch(ctx, rt, sess); err != nil {
		return nil, err
	}
	return newCartView(rt), nil
}

// DecrementItem lowers the line quantity by one. Decrementing a quantity-1
// line issues a delete; an update to quantity 0 is not part of the server
// contract.
func (s *SyncService) DecrementItem(ctx context.Context, sess Session, itemID string) (*CartView, error) {
	rt := s.runtimes.Get(sess.UserID)

	item, ok := rt.items.Get(itemID)
	if !ok {
		return nil, cart.ErrItemNotFound
	}

	if item.Quantity <= 1 {
		return s.RemoveItem(ctx, sess, itemID)
	}

	if err := s.remote.UpdateQuantity(ctx, sess.Token, itemID, item.Quantity-1); err != nil {
		return nil, err
	}
	if err := s.refetch(ctx, rt, sess); err != nil {
		return nil, err
	}
	return newCartView(rt), nil
}

// RemoveItem deletes a single cart line. The line is dropped locally as soon
// as the server confirms the delete, ahead of the refetch.
func (s *SyncService) RemoveItem(ctx context.Context, sess Session, itemID string) (*CartView, error) {
	rt := s.runtimes.Get(sess.UserID)

	if _, ok := rt.items.Get(itemID); !ok {
		return nil, cart.ErrItemNotFound
	}

	if err := s.remote.DeleteItem(ctx, sess.Token, itemID); err != nil {
		return nil, err
	}
	rt.items.RemoveByID(itemID)
	rt.selection.Remove(itemID)

	if err := s.refetch(ctx, rt, sess); err != nil {
		return nil, err
	}
	return newCartView(rt), nil
}

// RemoveSelected deletes every currently selected line. The server exposes
// only a single-line delete, so this issues one delete per line, drops the
// confirmed ones locally, and ends with exactly one refetch regardless of
// partial failure, so the final state always reflects server truth.
func (s *SyncService) RemoveSelected(ctx context.Context, sess Session) (*CartView, error) {
	rt := s.runtimes.Get(sess.UserID)

	ids := rt.selection.IDs()
	if len(ids) == 0 {
		return nil, cart.ErrEmptySelection
	}

	var deleteErrs []error
	for _, id := range ids {
		if _, ok := rt.items.Get(id); !ok {
			continue
		}
		if err := s.remote.DeleteItem(ctx, sess.Token, id); err != nil {
			deleteErrs = append(deleteErrs, err)
			continue
		}
		rt.items.RemoveByID(id)
		rt.selection.Remove(id)
	}

	if err := s.refetch(ctx, rt, sess); err != nil {
		deleteErrs = append(deleteErrs, err)
	}
	if len(deleteErrs) > 0 {
		return nil, errors.Join(deleteErrs...)
	}
	return newCartView(rt), nil
}

// Orders fetches the order history and replaces the local snapshot. Like
// Refresh, it is a no-op for anonymous sessions.
func (s *SyncService) Orders(ctx context.Context, sess Session) ([]OrderView, error) {
	rt := s.runtimes.Get(sess.UserID)
	if !sess.Authenticated() {
		return newOrderViews(rt.orders.Orders()), nil
	}

	orders, err := s.remote.FetchOrders(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	rt.orders.Replace(orders)
	return newOrderViews(orders), nil
}

// EndSession drops all local state for the user
func (s *SyncService) EndSession(sess Session) {
	s.runtimes.Drop(sess.UserID)
}

// refetch replaces the runtime's cart snapshot with server truth and prunes
// selection ids orphaned by the replace.
func (s *SyncService) refetch(ctx context.Context, rt *Runtime, sess Session) error {
	items, err := s.remote.FetchItems(ctx, sess.Token)
	if err != nil {
		return err
	}
	rt.items.Replace(items)
	rt.selection.Prune(rt.items.IDs())
	return nil
}
