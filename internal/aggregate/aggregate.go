// Package aggregate derives dashboard statistics from the order ledger.
// Everything here is a pure function recomputed per call.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

// TodaysRevenue sums the totals of orders placed on the same calendar
// date as now.
func TodaysRevenue(orders []domain.Order, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if domain.SameDay(o.CreatedDate, now) {
			total = total.Add(o.Total)
		}
	}
	return total
}

// TotalRevenue sums the totals of all orders in the ledger.
func TotalRevenue(orders []domain.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}
	return total
}

// PendingOrders returns the orders still needing owner attention
// (pending or preparing), in ledger order.
func PendingOrders(orders []domain.Order) []domain.Order {
	var result []domain.Order
	for _, o := range orders {
		if o.Status.IsOpen() {
			result = append(result, o)
		}
	}
	return result
}

// CompletedOrders returns the delivered orders, in ledger order.
func CompletedOrders(orders []domain.Order) []domain.Order {
	var result []domain.Order
	for _, o := range orders {
		if o.Status.IsCompleted() {
			result = append(result, o)
		}
	}
	return result
}

// OrderCount is the number of orders in the ledger.
func OrderCount(orders []domain.Order) int {
	return len(orders)
}

// AverageOrderValue is total revenue divided by order count, zero for an
// empty ledger.
func AverageOrderValue(orders []domain.Order) decimal.Decimal {
	if len(orders) == 0 {
		return decimal.Zero
	}
	return TotalRevenue(orders).Div(decimal.NewFromInt(int64(len(orders))))
}

// DistinctCustomers counts the distinct customer identities that placed
// orders.
func DistinctCustomers(orders []domain.Order) int {
	seen := make(map[string]struct{})
	for _, o := range orders {
		seen[o.CustomerEmail] = struct{}{}
	}
	return len(seen)
}
