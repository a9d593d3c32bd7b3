package cart

import (
	"time"

	"github.com/storefront/cartsync/internal/domain/cart"
)

// ==================== Cart view ====================

// ItemView is one cart line as presented to the UI, with the discounted unit
// price pre-computed and the selection flag folded in.
type ItemView struct {
	ID              string   `json:"id"`
	ProductID       string   `json:"product_id"`
	Name            string   `json:"name"`
	Unit            string   `json:"unit"`
	Images          []string `json:"images"`
	Price           int64    `json:"price"`
	DiscountPercent int64    `json:"discount_percent"`
	DiscountedPrice int64    `json:"discounted_price"`
	Stock           int64    `json:"stock"`
	Quantity        int64    `json:"quantity"`
	Selected        bool     `json:"selected"`
}

// CartView is the cart page payload: all lines plus full-cart totals
type CartView struct {
	Items                   []ItemView `json:"items"`
	TotalQuantity           int64      `json:"total_quantity"`
	TotalPrice              int64      `json:"total_price"`
	NotDiscountedTotalPrice int64      `json:"not_discounted_total_price"`
	SelectedCount           int        `json:"selected_count"`
}

func newCartView(rt *Runtime) *CartView {
	items := rt.items.Items()
	totals := cart.CalculateTotals(items)

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
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
			Selected:        rt.selection.IsSelected(item.ID),
		})
	}

	return &CartView{
		Items:                   views,
		TotalQuantity:           totals.TotalQuantity,
		TotalPrice:              totals.TotalPrice,
		NotDiscountedTotalPrice: totals.NotDiscountedTotalPrice,
		SelectedCount:           rt.selection.Count(),
	}
}

// ==================== Checkout view ====================

// CheckoutView is the pre-payment summary: the selection-scoped subset and
// its derived totals, shown before handing off to the payment flow.
type CheckoutView struct {
	Items                   []ItemView `json:"items"`
	TotalQuantity           int64      `json:"total_quantity"`
	TotalPrice              int64      `json:"total_price"`
	NotDiscountedTotalPrice int64      `json:"not_discounted_total_price"`
}

// ==================== Order views ====================

// OrderItemView is one line of a past order
type OrderItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderView is one past order in the history feed
type OrderView struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	TotalPrice int64           `json:"total_price"`
	Items      []OrderItemView `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
}

func newOrderViews(orders []cart.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		itemViews := make([]OrderItemView, 0, len(order.Items))
		for _, item := range order.Items {
			itemViews = append(itemViews, OrderItemView{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
		views = append(views, OrderView{
			ID:         order.ID,
			Status:     order.Status,
			TotalPrice: order.TotalPrice,
			Items:      itemViews,
			CreatedAt:  order.CreatedAt,
		})
	}
	return views
}
