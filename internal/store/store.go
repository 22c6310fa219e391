package store

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

// Common errors returned by the store
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("illegal transition of order status")
)

// SessionStore holds all mutable application state: active sessions with
// their carts, the order ledger and the feedback log. Every mutation is
// keyed by an opaque session ID so concurrent sessions never interleave.
type SessionStore interface {
	// CreateSession registers a new authenticated session and returns
	// its ID. An identity logging in again gets a fresh session; the
	// new session replaces nothing and shares nothing.
	CreateSession(user domain.User) string

	// GetSession returns the identity behind a session ID
	GetSession(sessionID string) (domain.User, error)

	// DeleteSession ends a session. The session's cart goes with it.
	// Deleting an unknown session is not an error.
	DeleteSession(sessionID string)

	// AddItem adds one unit of the given menu item to the session's
	// cart: an existing line grows by 1, otherwise a new line with
	// quantity 1 is appended.
	AddItem(sessionID string, item domain.MenuItem) error

	// RemoveItem deletes the cart line for itemID. Absent lines are a no-op.
	RemoveItem(sessionID string, itemID string) error

	// SetQuantity overwrites a line's quantity. Quantity <= 0 behaves
	// as RemoveItem. Setting quantity on an absent line is a no-op.
	SetQuantity(sessionID string, itemID string, quantity int) error

	// ClearCart empties the session's cart
	ClearCart(sessionID string) error

	// Cart returns a copy of the session's cart lines in insertion order
	Cart(sessionID string) ([]domain.CartItem, error)

	// Subtotal returns sum(price * quantity) over the session's cart
	Subtotal(sessionID string) (decimal.Decimal, error)

	// PlaceOrder converts the session's cart into a new ledger entry
	// and clears the cart, as one atomic step. Returns ErrEmptyCart if
	// there is nothing to check out.
	PlaceOrder(sessionID string, address string, paymentMethod string) (*domain.Order, error)

	// Orders returns the full ledger, newest first
	Orders() []domain.Order

	// OrdersByCustomer returns the ledger entries placed by the given
	// customer, newest first
	OrdersByCustomer(email string) []domain.Order

	// SetOrderStatus advances an order's fulfillment status. Only
	// forward transitions (pending -> preparing -> delivered) are
	// allowed.
	SetOrderStatus(orderID string, status domain.OrderStatus) error

	// AddFeedback appends a feedback entry
	AddFeedback(fb domain.Feedback)

	// Feedback returns all feedback entries, newest first
	Feedback() []domain.Feedback
}

// dateStamp is the calendar date an order gets at checkout time.
func dateStamp(now time.Time) time.Time {
	return domain.DateOnly(now)
}
