package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of a placed order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
)

// IsOpen reports whether the order still needs owner attention.
func (s OrderStatus) IsOpen() bool {
	return s == OrderStatusPending || s == OrderStatusPreparing
}

// IsCompleted reports whether the order reached its terminal state.
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusDelivered
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is an immutable snapshot of a cart at checkout time. Items are
// deep copies; mutating the live cart after checkout never changes a
// placed order. Total equals the cart subtotal computed at checkout and
// does not include the delivery fee, which is a presentation concern.
type Order struct {
	ID            string          `json:"id"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	CreatedDate   time.Time       `json:"createdDate"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
}

// DateOnly truncates t to calendar-date granularity. Orders are stamped
// with the day they were placed, not the time of day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
