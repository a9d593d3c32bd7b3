package cart

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/storefront/cartsync/internal/domain/cart"
)

type mockRemoteCart struct {
	mock.Mock
}

func (m *mockRemoteCart) FetchItems(ctx context.Context, credential string) ([]cart.LineItem, error) {
	args := m.Called(ctx, credential)
	items, _ := args.Get(0).([]cart.LineItem)
	return items, args.Error(1)
}

func (m *mockRemoteCart) AddItem(ctx context.Context, credential, productID string) error {
	args := m.Called(ctx, credential, productID)
	return args.Error(0)
}

func (m *mockRemoteCart) UpdateQuantity(ctx context.Context, credential, id string, quantity int64) error {
	args := m.Called(ctx, credential, id, quantity)
	return args.Error(0)
}

func (m *mockRemoteCart) DeleteItem(ctx context.Context, credential, id string) error {
	args := m.Called(ctx, credential, id)
	return args.Error(0)
}

func (m *mockRemoteCart) Clear(ctx context.Context, credential string, productIDs []string) error {
	args := m.Called(ctx, credential, productIDs)
	return args.Error(0)
}

func (m *mockRemoteCart) FetchOrders(ctx context.Context, credential string) ([]cart.Order, error) {
	args := m.Called(ctx, credential)
	orders, _ := args.Get(0).([]cart.Order)
	return orders, args.Error(1)
}

var _ cart.RemoteCart = (*mockRemoteCart)(nil)

type mockSelectionStore struct {
	mock.Mock
}

func (m *mockSelectionStore) Save(ctx context.Context, userID string, productIDs []string, ttl time.Duration) error {
	args := m.Called(ctx, userID, productIDs, ttl)
	return args.Error(0)
}

func (m *mockSelectionStore) Load(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *mockSelectionStore) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockSelectionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ cart.SelectionStore = (*mockSelectionStore)(nil)

// ---- test fixtures ----

func line(id, productID string, price, discount, stock, qty int64) cart.LineItem {
	return cart.LineItem{
		ID:       id,
		Quantity: qty,
		Product: cart.ProductRef{
			ProductID:       productID,
			Name:            "Product " + productID,
			Unit:            "pcs",
			Price:           price,
			DiscountPercent: discount,
			Stock:           stock,
		},
	}
}

func testSession() Session {
	return Session{Token: "token-1", UserID: "user-1"}
}
