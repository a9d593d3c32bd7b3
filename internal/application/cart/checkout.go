package cart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/storefront/cartsync/internal/domain/cart"
)

// CheckoutService handles the handoff to the external payment flow and the
// reconciliation afterwards. Before handoff it persists the selection as
// product identifiers, not line ids, because the server may regenerate line
// ids between handoff and reconciliation (the payment redirect can outlive
// this process's in-memory state).
type CheckoutService struct {
	remote     cart.RemoteCart
	selections cart.SelectionStore
	runtimes   *Registry
	config     cart.HandoffConfig
	logger     *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(remote cart.RemoteCart, selections cart.SelectionStore, runtimes *Registry, config cart.HandoffConfig, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.TTL <= 0 {
		config = cart.DefaultHandoffConfig()
	}
	return &CheckoutService{
		remote:     remote,
		selections: selections,
		runtimes:   runtimes,
		config:     config,
		logger:     logger,
	}
}

// Begin computes the selection-scoped checkout summary and persists the
// selected product ids before the caller navigates to the payment flow.
// An empty selection blocks the handoff.
func (s *CheckoutService) Begin(ctx context.Context, sess Session) (*CheckoutView, error) {
	rt := s.runtimes.Get(sess.UserID)

	var subset []cart.LineItem
	for _, item := range rt.items.Items() {
		if rt.selection.IsSelected(item.ID) {
			subset = append(subset, item)
		}
	}
	if len(subset) == 0 {
		return nil, cart.ErrEmptySelection
	}

	productIDs := make([]string, 0, len(subset))
	views := make([]ItemView, 0, len(subset))
	for _, item := range subset {
		productIDs = append(productIDs, item.Product.ProductID)
		views = append(views, ItemView{
			ID:              item.ID,
			ProductID:       item.Product.ProductID,
			Name:            item.Product.Name,
			Unit:            item.Product.Unit,
			Images:          item.Product.Images,
			Price:           item.Product.Price,
			DiscountPercent: item.Product.DiscountPercent,
			DiscountedPrice: item.DiscountedUnitPrice(),
			Stock:           item.Product.Stock,
			Quantity:        item.Quantity,
			Selected:        true,
		})
	}

	if err := s.selections.Save(ctx, sess.UserID, productIDs, s.config.TTL); err != nil {
		return nil, fmt.Errorf("persist checkout selection: %w", err)
	}

	totals := cart.CalculateTotals(subset)
	return &CheckoutView{
		Items:                   views,
		TotalQuantity:           totals.TotalQuantity,
		TotalPrice:              totals.TotalPrice,
		NotDiscountedTotalPrice: totals.NotDiscountedTotalPrice,
	}, nil
}

// Complete reconciles local state after the external payment flow confirms.
// It clears server-side cart entries scoped to the given product ids,
// falling back to the persisted handoff selection when the caller supplies
// none (guarding against selection loss across the payment redirect), then
// unconditionally refetches both the cart and the order history exactly once
// each, even when the clear itself failed, so the user never keeps seeing
// pre-payment state. The handoff key is removed only after a successful
// clear.
func (s *CheckoutService) Complete(ctx context.Context, sess Session, productIDs []string) (*CartView, error) {
	rt := s.runtimes.Get(sess.UserID)

	if len(productIDs) == 0 {
		stored, err := s.selections.Load(ctx, sess.UserID)
		if err != nil {
			s.logger.Warn("loading persisted checkout selection failed, clearing whole cart",
				zap.String("user_id", sess.UserID),
				zap.Error(err))
		} else {
			productIDs = stored
		}
	}

	clearErr := s.remote.Clear(ctx, sess.Token, productIDs)
	if clearErr == nil {
		if err := s.selections.Clear(ctx, sess.UserID); err != nil {
			s.logger.Warn("removing persisted checkout selection failed",
				zap.String("user_id", sess.UserID),
				zap.Error(err))
		}
	} else {
		s.logger.Error("post-checkout cart clear failed",
			zap.String("user_id", sess.UserID),
			zap.Error(clearErr))
	}

	// Server truth after payment, regardless of the clear outcome
	if items, err := s.remote.FetchItems(ctx, sess.Token); err != nil {
		s.logRefetchFailure("cart", sess, err)
	} else {
		rt.items.Replace(items)
		rt.selection.Prune(rt.items.IDs())
	}
	if orders, err := s.remote.FetchOrders(ctx, sess.Token); err != nil {
		s.logRefetchFailure("order history", sess, err)
	} else {
		rt.orders.Replace(orders)
	}

	if clearErr != nil {
		return nil, fmt.Errorf("post-checkout clear: %w", clearErr)
	}
	return newCartView(rt), nil
}

func (s *CheckoutService) logRefetchFailure(what string, sess Session, err error) {
	if errors.Is(err, cart.ErrRemoteUnauthenticated) {
		s.logger.Debug("post-checkout refetch skipped, remote session expired",
			zap.String("what", what),
			zap.String("user_id", sess.UserID))
		return
	}
	s.logger.Error("post-checkout refetch failed",
		zap.String("what", what),
		zap.String("user_id", sess.UserID),
		zap.Error(err))
}
