package cart

import "time"

// ProductRef is the snapshot of a product embedded in a cart line at last
// sync. The server response is the authority for every field; the snapshot is
// only as fresh as the last successful fetch.
type ProductRef struct {
	ProductID       string   `json:"product_id"`
	Name            string   `json:"name"`
	Unit            string   `json:"unit"`
	Images          []string `json:"images"`
	Price           int64    `json:"price"`            // smallest currency unit
	DiscountPercent int64    `json:"discount_percent"` // 0-100
	Stock           int64    `json:"stock"`
}

// LineItem is one entry in the cart. Its ID is assigned by the server and is
// stable across quantity changes, distinct from the product identifier.
type LineItem struct {
	ID       string     `json:"id"`
	Product  ProductRef `json:"product"`
	Quantity int64      `json:"quantity"`
}

// DiscountedUnitPrice returns the unit price after the snapshot discount
func (i LineItem) DiscountedUnitPrice() int64 {
	return DiscountedUnitPrice(i.Product.Price, i.Product.DiscountPercent)
}

// CanIncrement reports whether one more unit fits within last-synced stock.
// The snapshot may be stale; the server remains the final authority.
func (i LineItem) CanIncrement() bool {
	return i.Quantity < i.Product.Stock
}

// OrderItem is one line of a completed order as reported by the server
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Order is a completed order from the order-history feed
type Order struct {
	ID         string      `json:"id"`
	Status     string      `json:"status"`
	TotalPrice int64       `json:"total_price"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
}
