package publisher

import (
	"context"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

// EventPublisher announces placed orders to downstream consumers
// (kitchen display, notifications). Publishing is best-effort: checkout
// never fails because the broker is down.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
	Close() error
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, *domain.Order) error { return nil }
func (NopPublisher) Close() error                                            { return nil }
