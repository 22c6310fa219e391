package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

// AuthResult is what a successful login or registration hands back: the
// bearer token for subsequent calls plus the resolved identity.
type AuthResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// CartView is the cart as presented to clients.
type CartView struct {
	Items     []domain.CartItem `json:"items"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	ItemCount int               `json:"itemCount"`
}

// ItemDetails is one menu item plus other items from its category.
type ItemDetails struct {
	Item    domain.MenuItem   `json:"item"`
	Related []domain.MenuItem `json:"related"`
}

// CheckoutQuote breaks down what an order would cost right now. The
// delivery fee is a presentation-level addition; the order total stored
// at checkout is the subtotal alone.
type CheckoutQuote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

// DashboardStats is the owner dashboard snapshot, recomputed from the
// ledger on every read.
type DashboardStats struct {
	TodaysRevenue     decimal.Decimal   `json:"todaysRevenue"`
	TotalRevenue      decimal.Decimal   `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal   `json:"averageOrderValue"`
	OrderCount        int               `json:"orderCount"`
	DistinctCustomers int               `json:"distinctCustomers"`
	PendingOrders     []domain.Order    `json:"pendingOrders"`
	CompletedOrders   []domain.Order    `json:"completedOrders"`
	Feedback          []domain.Feedback `json:"feedback"`
}

// Storefront is the application surface consumed by the HTTP layer.
type Storefront interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Logout(sessionID string)

	Menu(ctx context.Context, category, query string) ([]domain.MenuItem, error)
	ItemDetails(ctx context.Context, id string) (*ItemDetails, error)
	Categories(ctx context.Context) ([]string, error)

	Cart(sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID, itemID string) (*CartView, error)
	SetQuantity(sessionID, itemID string, quantity int) (*CartView, error)
	RemoveItem(sessionID, itemID string) (*CartView, error)
	ClearCart(sessionID string) (*CartView, error)

	Quote(sessionID string) (*CheckoutQuote, error)
	PlaceOrder(ctx context.Context, sessionID, address, paymentMethod string) (*domain.Order, error)
	Orders(sessionID string) ([]domain.Order, error)

	Dashboard(sessionID string) (*DashboardStats, error)
	AdvanceOrder(sessionID, orderID string, status domain.OrderStatus) error

	SubmitFeedback(fb domain.Feedback)
}

// CatalogProvider is the slice of the catalog service this layer needs.
type CatalogProvider interface {
	Menu(ctx context.Context, category, query string) ([]domain.MenuItem, error)
	Item(ctx context.Context, id string) (*domain.MenuItem, error)
	Related(ctx context.Context, item *domain.MenuItem, limit int) ([]domain.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
}
