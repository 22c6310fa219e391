package domain

import "github.com/shopspring/decimal"

// CartItem is one cart line: a snapshot of the menu item taken when it
// was first added, plus a quantity. The snapshot freezes price and rating
// at add time, so later catalog changes never affect an existing cart.
type CartItem struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Subtotal sums price * quantity over all lines. Zero for an empty cart.
func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Item.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ItemCount is the total number of units across all lines (the cart
// badge number in the UI).
func ItemCount(items []CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
