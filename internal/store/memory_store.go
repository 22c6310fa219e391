package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

// session is the per-session slice of state: the identity plus the cart
// it owns. Cart lines keep insertion order.
type session struct {
	user domain.User
	cart []domain.CartItem
}

// MemoryStore implements SessionStore with in-memory storage. State lives
// for the lifetime of the process; there is no durability guarantee.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ledger   []domain.Order // newest first
	feedback []domain.Feedback
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*session),
	}
}

func (s *MemoryStore) CreateSession(user domain.User) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.sessions[id] = &session{user: user}
	return id
}

func (s *MemoryStore) GetSession(sessionID string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return domain.User{}, ErrSessionNotFound
	}
	return sess.user, nil
}

func (s *MemoryStore) DeleteSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

func (s *MemoryStore) AddItem(sessionID string, item domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return ErrSessionNotFound
	}

	for i := range sess.cart {
		if sess.cart[i].Item.ID == item.ID {
			sess.cart[i].Quantity++
			return nil
		}
	}

	sess.cart = append(sess.cart, domain.CartItem{Item: item, Quantity: 1})
	return nil
}

func (s *MemoryStore) RemoveItem(sessionID string, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return ErrSessionNotFound
	}

	for i, line := range sess.cart {
		if line.Item.ID == itemID {
			sess.cart = append(sess.cart[:i], sess.cart[i+1:]...)
			return nil
		}
	}
	// absent line, nothing to do
	return nil
}

func (s *MemoryStore) SetQuantity(sessionID string, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(sessionID, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return ErrSessionNotFound
	}

	for i := range sess.cart {
		if sess.cart[i].Item.ID == itemID {
			sess.cart[i].Quantity = quantity
			return nil
		}
	}
	// absent line, nothing to do
	return nil
}

func (s *MemoryStore) ClearCart(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return ErrSessionNotFound
	}

	sess.cart = nil
	return nil
}

func (s *MemoryStore) Cart(sessionID string) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}

	return copyItems(sess.cart), nil
}

func (s *MemoryStore) Subtotal(sessionID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return decimal.Zero, ErrSessionNotFound
	}

	return domain.Subtotal(sess.cart), nil
}

// PlaceOrder runs the whole checkout sequence under one write lock:
// compute the subtotal, build the order from a copy of the cart, prepend
// it to the ledger and clear the cart. Two concurrent checkouts on the
// same session can never both observe the pre-clear cart.
func (s *MemoryStore) PlaceOrder(sessionID string, address string, paymentMethod string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}
	if len(sess.cart) == 0 {
		return nil, ErrEmptyCart
	}

	order := domain.Order{
		ID:            uuid.New().String(),
		CustomerEmail: sess.user.Email,
		Items:         copyItems(sess.cart),
		Total:         domain.Subtotal(sess.cart),
		Status:        domain.OrderStatusPending,
		CreatedDate:   dateStamp(time.Now()),
		Address:       address,
		PaymentMethod: paymentMethod,
	}

	s.ledger = append([]domain.Order{order}, s.ledger...)
	sess.cart = nil

	return &order, nil
}

func (s *MemoryStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyOrders(s.ledger)
}

func (s *MemoryStore) OrdersByCustomer(email string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Order
	for _, o := range s.ledger {
		if o.CustomerEmail == email {
			result = append(result, copyOrder(o))
		}
	}
	return result
}

// statusRank orders the fulfillment states; transitions only move forward.
func statusRank(status domain.OrderStatus) int {
	switch status {
	case domain.OrderStatusPending:
		return 0
	case domain.OrderStatusPreparing:
		return 1
	case domain.OrderStatusDelivered:
		return 2
	}
	return -1
}

func (s *MemoryStore) SetOrderStatus(orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidTransition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ledger {
		if s.ledger[i].ID == orderID {
			if statusRank(status) <= statusRank(s.ledger[i].Status) {
				return ErrInvalidTransition
			}
			s.ledger[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (s *MemoryStore) AddFeedback(fb domain.Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedback = append([]domain.Feedback{fb}, s.feedback...)
}

func (s *MemoryStore) Feedback() []domain.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Feedback, len(s.feedback))
	copy(result, s.feedback)
	return result
}

// copyItems deep-copies cart lines so callers and ledger entries never
// alias live cart state.
func copyItems(items []domain.CartItem) []domain.CartItem {
	if items == nil {
		return nil
	}
	result := make([]domain.CartItem, len(items))
	copy(result, items)
	return result
}

func copyOrder(o domain.Order) domain.Order {
	o.Items = copyItems(o.Items)
	return o
}

func copyOrders(orders []domain.Order) []domain.Order {
	result := make([]domain.Order, len(orders))
	for i, o := range orders {
		result[i] = copyOrder(o)
	}
	return result
}
