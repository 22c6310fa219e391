package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

func menuItem(id, name string, price string) domain.MenuItem {
	return domain.MenuItem{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: "Bombay Special",
		Rating:   4.5,
	}
}

func setupSession(t *testing.T) (*MemoryStore, string) {
	s := NewMemoryStore()
	id := s.CreateSession(domain.User{Name: "John Doe", Email: "john@example.com", Role: domain.RoleCustomer})
	return s, id
}

func TestCreateSession_And_GetSession(t *testing.T) {
	s := NewMemoryStore()

	id := s.CreateSession(domain.User{Name: "John Doe", Email: "john@example.com"})
	assert.NotEmpty(t, id)

	user, err := s.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)

	_, err = s.GetSession("nonexistent")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSession_ClearsCart(t *testing.T) {
	s, id := setupSession(t)
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))

	s.DeleteSession(id)

	_, err := s.Cart(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// A fresh session for the same identity starts with an empty cart
	id2 := s.CreateSession(domain.User{Name: "John Doe", Email: "john@example.com"})
	cart, err := s.Cart(id2)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestAddItem_RepeatedCallsGrowQuantity(t *testing.T) {
	s, id := setupSession(t)
	item := menuItem("1", "Pav Bhaji", "120.00")

	for i := 0; i < 4; i++ {
		require.NoError(t, s.AddItem(id, item))
	}

	cart, err := s.Cart(id)
	require.NoError(t, err)

	// exactly one line for the id, quantity equals the call count
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	s, id := setupSession(t)

	require.NoError(t, s.AddItem(id, menuItem("2", "Chole Bhature", "150.00")))
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))
	require.NoError(t, s.AddItem(id, menuItem("2", "Chole Bhature", "150.00")))

	cart, err := s.Cart(id)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, "2", cart[0].Item.ID)
	assert.Equal(t, "1", cart[1].Item.ID)
}

func TestRemoveItem_AbsentLineIsNoop(t *testing.T) {
	s, id := setupSession(t)
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))

	require.NoError(t, s.RemoveItem(id, "999"))

	cart, _ := s.Cart(id)
	assert.Len(t, cart, 1)

	require.NoError(t, s.RemoveItem(id, "1"))
	cart, _ = s.Cart(id)
	assert.Empty(t, cart)
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{"overwrite", 5, 1, 5},
		{"zero removes line", 0, 0, 0},
		{"negative removes line", -3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, id := setupSession(t)
			require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))

			require.NoError(t, s.SetQuantity(id, "1", tt.quantity))

			cart, err := s.Cart(id)
			require.NoError(t, err)
			assert.Len(t, cart, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantQty, cart[0].Quantity)
			}
		})
	}
}

func TestSetQuantity_AbsentLineIsNoop(t *testing.T) {
	s, id := setupSession(t)

	require.NoError(t, s.SetQuantity(id, "999", 3))

	cart, _ := s.Cart(id)
	assert.Empty(t, cart)
}

func TestSubtotal(t *testing.T) {
	s, id := setupSession(t)

	// empty cart is exactly zero
	subtotal, err := s.Subtotal(id)
	require.NoError(t, err)
	assert.True(t, subtotal.IsZero())

	// fractional prices must not accumulate rounding error
	require.NoError(t, s.AddItem(id, menuItem("1", "Masala Chai", "20.50")))
	require.NoError(t, s.AddItem(id, menuItem("1", "Masala Chai", "20.50")))
	require.NoError(t, s.AddItem(id, menuItem("2", "Vada Pav", "40.75")))

	subtotal, err = s.Subtotal(id)
	require.NoError(t, err)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("81.75")), "got %s", subtotal)
}

func TestPlaceOrder_Success(t *testing.T) {
	s, id := setupSession(t)

	// add item A (120.00) x2, item B (80.00) x1 -> subtotal 320.00
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))
	require.NoError(t, s.AddItem(id, menuItem("2", "Lassi", "80.00")))

	subtotal, err := s.Subtotal(id)
	require.NoError(t, err)
	require.True(t, subtotal.Equal(decimal.RequireFromString("320.00")))

	order, err := s.PlaceOrder(id, "12 Elm St", "card")
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.True(t, order.Total.Equal(subtotal))
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "12 Elm St", order.Address)
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, "john@example.com", order.CustomerEmail)
	assert.Len(t, order.Items, 2)

	// date-only granularity
	assert.True(t, domain.SameDay(order.CreatedDate, time.Now()))
	assert.Equal(t, 0, order.CreatedDate.Hour())

	// cart is empty afterward, ledger head is the new order
	cart, err := s.Cart(id)
	require.NoError(t, err)
	assert.Empty(t, cart)

	ledger := s.Orders()
	require.Len(t, ledger, 1)
	assert.Equal(t, order.ID, ledger[0].ID)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	s, id := setupSession(t)

	_, err := s.PlaceOrder(id, "12 Elm St", "card")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, s.Orders())
}

func TestPlaceOrder_NoSession(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.PlaceOrder("nonexistent", "12 Elm St", "card")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPlaceOrder_UniqueIDs_NewestFirst(t *testing.T) {
	s, id := setupSession(t)

	seen := make(map[string]bool)
	var last string
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))
		order, err := s.PlaceOrder(id, "12 Elm St", "upi")
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
		last = order.ID
	}

	ledger := s.Orders()
	require.Len(t, ledger, 5)
	assert.Equal(t, last, ledger[0].ID)
}

func TestPlaceOrder_SnapshotDoesNotAliasCart(t *testing.T) {
	s, id := setupSession(t)
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))

	order, err := s.PlaceOrder(id, "12 Elm St", "card")
	require.NoError(t, err)

	// mutate the cart after checkout; the placed order must not change
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))
	require.NoError(t, s.SetQuantity(id, "1", 9))

	ledger := s.Orders()
	require.Len(t, ledger, 1)
	assert.Equal(t, 1, ledger[0].Items[0].Quantity)
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestPlaceOrder_ConcurrentCheckoutsSameSession(t *testing.T) {
	s, id := setupSession(t)
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.PlaceOrder(id, "12 Elm St", "card")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	// exactly one checkout wins; the rest see the already-cleared cart
	var succeeded, empty int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrEmptyCart):
			empty++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, empty)
	assert.Len(t, s.Orders(), 1)
}

func TestOrdersByCustomer(t *testing.T) {
	s := NewMemoryStore()
	john := s.CreateSession(domain.User{Name: "John", Email: "john@example.com"})
	priya := s.CreateSession(domain.User{Name: "Priya", Email: "priya@example.com"})

	require.NoError(t, s.AddItem(john, menuItem("1", "Pav Bhaji", "120.00")))
	_, err := s.PlaceOrder(john, "12 Elm St", "card")
	require.NoError(t, err)

	require.NoError(t, s.AddItem(priya, menuItem("2", "Lassi", "80.00")))
	_, err = s.PlaceOrder(priya, "7 Oak Ave", "upi")
	require.NoError(t, err)

	johns := s.OrdersByCustomer("john@example.com")
	require.Len(t, johns, 1)
	assert.Equal(t, "john@example.com", johns[0].CustomerEmail)

	assert.Empty(t, s.OrdersByCustomer("nobody@example.com"))
}

func TestSetOrderStatus_Transitions(t *testing.T) {
	s, id := setupSession(t)
	require.NoError(t, s.AddItem(id, menuItem("1", "Pav Bhaji", "120.00")))
	order, err := s.PlaceOrder(id, "12 Elm St", "card")
	require.NoError(t, err)

	// forward transitions succeed
	require.NoError(t, s.SetOrderStatus(order.ID, domain.OrderStatusPreparing))
	require.NoError(t, s.SetOrderStatus(order.ID, domain.OrderStatusDelivered))

	// backward and repeated transitions are rejected
	assert.ErrorIs(t, s.SetOrderStatus(order.ID, domain.OrderStatusPreparing), ErrInvalidTransition)
	assert.ErrorIs(t, s.SetOrderStatus(order.ID, domain.OrderStatusDelivered), ErrInvalidTransition)

	assert.ErrorIs(t, s.SetOrderStatus("nonexistent", domain.OrderStatusPreparing), ErrOrderNotFound)
	assert.ErrorIs(t, s.SetOrderStatus(order.ID, domain.OrderStatus("shipped")), ErrInvalidTransition)
}

func TestFeedback_NewestFirst(t *testing.T) {
	s := NewMemoryStore()

	s.AddFeedback(domain.Feedback{Name: "John", Message: "great pav bhaji", Rating: 5})
	s.AddFeedback(domain.Feedback{Name: "Priya", Message: "lassi too sweet", Rating: 3})

	fbs := s.Feedback()
	require.Len(t, fbs, 2)
	assert.Equal(t, "Priya", fbs[0].Name)
}
