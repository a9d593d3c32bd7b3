package storefront

import (
	"time"

	"github.com/storefront/cartsync/internal/domain/cart"
)

// ---------------------------------------------------------------------------
// Common Response Types
// ---------------------------------------------------------------------------

// BaseResponse is the envelope shared by all remote cart API responses
type BaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// IsSuccess returns true if the response indicates success
func (r *BaseResponse) IsSuccess() bool {
	return r.Success
}

// ---------------------------------------------------------------------------
// Cart Types
// ---------------------------------------------------------------------------

// CartProduct is the product snapshot embedded in a remote cart item
type CartProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Unit            string   `json:"unit"`
	Images          []string `json:"images"`
	Price           int64    `json:"price"`
	DiscountPercent int64    `json:"discountPercent"`
	Stock           int64    `json:"stock"`
}

// CartItem is a cart line as returned by the remote cart service
type CartItem struct {
	ID       string      `json:"id"`
	Product  CartProduct `json:"product"`
	Quantity int64       `json:"quantity"`
}

// CartItemsResponse is the response for GET cart-items
type CartItemsResponse struct {
	BaseResponse
	Data []CartItem `json:"data"`
}

// AddToCartRequest is the body for POST add-to-cart
type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

// UpdateQuantityRequest is the body for POST update-cart-item-quantity
type UpdateQuantityRequest struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// DeleteItemRequest is the body for POST delete-cart-item
type DeleteItemRequest struct {
	ID string `json:"id"`
}

// ClearCartRequest is the body for POST clear-cart. An empty SelectedProductIDs
// clears the whole cart.
type ClearCartRequest struct {
	SelectedProductIDs []string `json:"selectedProductIds,omitempty"`
}

// ---------------------------------------------------------------------------
// Order Types
// ---------------------------------------------------------------------------

// OrderItem is one line of a remote order
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// Order is an order from the remote order-history feed
type Order struct {
	ID         string      `json:"id"`
	Status     string      `json:"status"`
	TotalPrice int64       `json:"totalPrice"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// OrderItemsResponse is the response for GET order-items
type OrderItemsResponse struct {
	BaseResponse
	Data []Order `json:"data"`
}

// ---------------------------------------------------------------------------
// Domain Conversion
// ---------------------------------------------------------------------------

func (i CartItem) toDomain() cart.LineItem {
	return cart.LineItem{
		ID: i.ID,
		Product: cart.ProductRef{
			ProductID:       i.Product.ID,
			Name:            i.Product.Name,
			Unit:            i.Product.Unit,
			Images:          i.Product.Images,
			Price:           i.Product.Price,
			DiscountPercent: i.Product.DiscountPercent,
			Stock:           i.Product.Stock,
		},
		Quantity: i.Quantity,
	}
}

func (o Order) toDomain() cart.Order {
	items := make([]cart.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, cart.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return cart.Order{
		ID:         o.ID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}
