package kafka

import (
	"context"

	"github.com/gocartvn/checkout-api/internal/usecase"
)

// NoopPublisher stands in when event publishing is disabled.
type NoopPublisher struct{}

func NewNoopPublisher() usecase.EventPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) OrderCreated(ctx context.Context, event usecase.OrderCreatedEvent) error {
	return nil
}
