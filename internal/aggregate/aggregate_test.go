package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

func order(id, email, total string, status domain.OrderStatus, date time.Time) domain.Order {
	return domain.Order{
		ID:            id,
		CustomerEmail: email,
		Total:         decimal.RequireFromString(total),
		Status:        status,
		CreatedDate:   domain.DateOnly(date),
	}
}

func TestTodaysRevenue_OnlyCountsToday(t *testing.T) {
	now := time.Date(2026, 2, 10, 18, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	orders := []domain.Order{
		order("1", "a@example.com", "240.00", domain.OrderStatusDelivered, yesterday),
		order("2", "b@example.com", "320.00", domain.OrderStatusPending, now),
	}

	got := TodaysRevenue(orders, now)
	assert.True(t, got.Equal(decimal.RequireFromString("320.00")), "got %s", got)
}

func TestTotalRevenue(t *testing.T) {
	now := time.Now()
	orders := []domain.Order{
		order("1", "a@example.com", "240.00", domain.OrderStatusDelivered, now),
		order("2", "b@example.com", "120.50", domain.OrderStatusPending, now),
	}

	got := TotalRevenue(orders)
	assert.True(t, got.Equal(decimal.RequireFromString("360.50")), "got %s", got)

	assert.True(t, TotalRevenue(nil).IsZero())
}

func TestPendingAndCompletedOrders(t *testing.T) {
	now := time.Now()
	orders := []domain.Order{
		order("1", "a@example.com", "100.00", domain.OrderStatusPending, now),
		order("2", "a@example.com", "100.00", domain.OrderStatusPreparing, now),
		order("3", "b@example.com", "100.00", domain.OrderStatusDelivered, now),
	}

	pending := PendingOrders(orders)
	require.Len(t, pending, 2)
	assert.Equal(t, "1", pending[0].ID)
	assert.Equal(t, "2", pending[1].ID)

	completed := CompletedOrders(orders)
	require.Len(t, completed, 1)
	assert.Equal(t, "3", completed[0].ID)
}

func TestAverageOrderValue(t *testing.T) {
	// empty ledger returns zero, not a division error
	assert.True(t, AverageOrderValue(nil).IsZero())

	now := time.Now()
	orders := []domain.Order{
		order("1", "a@example.com", "100.00", domain.OrderStatusPending, now),
		order("2", "b@example.com", "201.00", domain.OrderStatusPending, now),
	}

	got := AverageOrderValue(orders)
	assert.True(t, got.Equal(decimal.RequireFromString("150.50")), "got %s", got)
}

func TestDistinctCustomers_CountsIdentitiesNotOrders(t *testing.T) {
	now := time.Now()
	orders := []domain.Order{
		order("1", "a@example.com", "100.00", domain.OrderStatusPending, now),
		order("2", "a@example.com", "100.00", domain.OrderStatusPending, now),
		order("3", "b@example.com", "100.00", domain.OrderStatusPending, now),
	}

	assert.Equal(t, 2, DistinctCustomers(orders))
	assert.Equal(t, 3, OrderCount(orders))
	assert.Equal(t, 0, DistinctCustomers(nil))
}
