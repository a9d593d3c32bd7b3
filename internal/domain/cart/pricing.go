package cart

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// DiscountedUnitPrice computes the unit price after applying a percentage
// discount. The discount amount is rounded up before subtraction, so rounding
// always favours the seller:
//
//	discounted = price - ceil(price * percent / 100)
//
// The function is total: a negative price is coerced to 0 and the percentage
// is clamped to [0,100]. For percent <= 0 the price is returned unchanged.
func DiscountedUnitPrice(price, discountPercent int64) int64 {
	if price < 0 {
		price = 0
	}
	if discountPercent <= 0 {
		return price
	}
	if discountPercent > 100 {
		discountPercent = 100
	}

	discountAmount := decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(discountPercent)).
		Div(oneHundred).
		Ceil().
		IntPart()

	return price - discountAmount
}

// Totals are aggregate figures derived from a set of cart lines. They are
// recomputed on demand and never stored.
type Totals struct {
	TotalQuantity           int64 `json:"total_quantity"`
	TotalPrice              int64 `json:"total_price"`
	NotDiscountedTotalPrice int64 `json:"not_discounted_total_price"`
}

// CalculateTotals derives totals over the given lines. TotalPrice sums
// discounted unit prices, NotDiscountedTotalPrice sums snapshot prices, so
// TotalPrice <= NotDiscountedTotalPrice with equality iff nothing in the set
// carries a discount.
func CalculateTotals(items []LineItem) Totals {
	var t Totals
	for _, item := range items {
		t.TotalQuantity += item.Quantity
		t.TotalPrice += item.DiscountedUnitPrice() * item.Quantity
		t.NotDiscountedTotalPrice += item.Product.Price * item.Quantity
	}
	return t
}
