package service

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/aggregate"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/auth"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/publisher"
	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/store"
)

const relatedItemsLimit = 4

type StorefrontService struct {
	store       store.SessionStore
	catalog     CatalogProvider
	authn       auth.Authenticator
	tokens      *auth.TokenManager
	events      publisher.EventPublisher
	deliveryFee decimal.Decimal
}

func NewStorefrontService(
	sessions store.SessionStore,
	catalog CatalogProvider,
	authn auth.Authenticator,
	tokens *auth.TokenManager,
	events publisher.EventPublisher,
	deliveryFee decimal.Decimal,
) *StorefrontService {
	return &StorefrontService{
		store:       sessions,
		catalog:     catalog,
		authn:       authn,
		tokens:      tokens,
		events:      events,
		deliveryFee: deliveryFee,
	}
}

func (s *StorefrontService) Login(_ context.Context, email, password string) (*AuthResult, error) {
	user, err := s.authn.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	return s.startSession(user)
}

func (s *StorefrontService) Register(_ context.Context, name, email, password string) (*AuthResult, error) {
	user, err := s.authn.Register(name, email, password)
	if err != nil {
		return nil, err
	}
	return s.startSession(user)
}

func (s *StorefrontService) startSession(user domain.User) (*AuthResult, error) {
	sessionID := s.store.CreateSession(user)

	token, err := s.tokens.Issue(sessionID)
	if err != nil {
		// never leave a session nobody can reach
		s.store.DeleteSession(sessionID)
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Logout ends the session; the session's cart is dropped with it.
func (s *StorefrontService) Logout(sessionID string) {
	s.store.DeleteSession(sessionID)
}

func (s *StorefrontService) Menu(ctx context.Context, category, query string) ([]domain.MenuItem, error) {
	return s.catalog.Menu(ctx, category, query)
}

func (s *StorefrontService) ItemDetails(ctx context.Context, id string) (*ItemDetails, error) {
	item, err := s.catalog.Item(ctx, id)
	if err != nil {
		return nil, err
	}

	related, err := s.catalog.Related(ctx, item, relatedItemsLimit)
	if err != nil {
		return nil, err
	}

	return &ItemDetails{Item: *item, Related: related}, nil
}

func (s *StorefrontService) Categories(ctx context.Context) ([]string, error) {
	return s.catalog.Categories(ctx)
}

func (s *StorefrontService) Cart(sessionID string) (*CartView, error) {
	return s.cartView(sessionID)
}

// AddItem resolves the menu item and adds one unit to the cart. The
// item's price is frozen into the cart line at this point.
func (s *StorefrontService) AddItem(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	item, err := s.catalog.Item(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if errAdd := s.store.AddItem(sessionID, *item); errAdd != nil {
		return nil, errAdd
	}
	return s.cartView(sessionID)
}

func (s *StorefrontService) SetQuantity(sessionID, itemID string, quantity int) (*CartView, error) {
	if err := s.store.SetQuantity(sessionID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.cartView(sessionID)
}

func (s *StorefrontService) RemoveItem(sessionID, itemID string) (*CartView, error) {
	if err := s.store.RemoveItem(sessionID, itemID); err != nil {
		return nil, err
	}
	return s.cartView(sessionID)
}

func (s *StorefrontService) ClearCart(sessionID string) (*CartView, error) {
	if err := s.store.ClearCart(sessionID); err != nil {
		return nil, err
	}
	return s.cartView(sessionID)
}

func (s *StorefrontService) cartView(sessionID string) (*CartView, error) {
	items, err := s.store.Cart(sessionID)
	if err != nil {
		return nil, err
	}

	return &CartView{
		Items:     items,
		Subtotal:  domain.Subtotal(items),
		ItemCount: domain.ItemCount(items),
	}, nil
}

func (s *StorefrontService) Quote(sessionID string) (*CheckoutQuote, error) {
	subtotal, err := s.store.Subtotal(sessionID)
	if err != nil {
		return nil, err
	}

	return &CheckoutQuote{
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Total:       subtotal.Add(s.deliveryFee),
	}, nil
}

// PlaceOrder checks out the session's cart. The store runs the whole
// sequence atomically; the order event is published best-effort after.
func (s *StorefrontService) PlaceOrder(ctx context.Context, sessionID, address, paymentMethod string) (*domain.Order, error) {
	order, err := s.store.PlaceOrder(sessionID, address, paymentMethod)
	if err != nil {
		return nil, err
	}

	if errPub := s.events.PublishOrderPlaced(ctx, order); errPub != nil {
		log.Printf("failed to publish order placed event for %s: %v", order.ID, errPub)
	}

	return order, nil
}

func (s *StorefrontService) Orders(sessionID string) ([]domain.Order, error) {
	user, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.store.OrdersByCustomer(user.Email), nil
}

// Dashboard returns the aggregate snapshot. Authorization is enforced
// here, not in the presentation layer: only owner sessions may read it.
func (s *StorefrontService) Dashboard(sessionID string) (*DashboardStats, error) {
	if err := s.requireOwner(sessionID); err != nil {
		return nil, err
	}

	orders := s.store.Orders()
	return &DashboardStats{
		TodaysRevenue:     aggregate.TodaysRevenue(orders, time.Now()),
		TotalRevenue:      aggregate.TotalRevenue(orders),
		AverageOrderValue: aggregate.AverageOrderValue(orders),
		OrderCount:        aggregate.OrderCount(orders),
		DistinctCustomers: aggregate.DistinctCustomers(orders),
		PendingOrders:     aggregate.PendingOrders(orders),
		CompletedOrders:   aggregate.CompletedOrders(orders),
		Feedback:          s.store.Feedback(),
	}, nil
}

func (s *StorefrontService) AdvanceOrder(sessionID, orderID string, status domain.OrderStatus) error {
	if err := s.requireOwner(sessionID); err != nil {
		return err
	}
	return s.store.SetOrderStatus(orderID, status)
}

func (s *StorefrontService) requireOwner(sessionID string) error {
	user, err := s.store.GetSession(sessionID)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleOwner {
		return ErrForbidden
	}
	return nil
}

func (s *StorefrontService) SubmitFeedback(fb domain.Feedback) {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	s.store.AddFeedback(fb)
}
