package usecase

import (
	"context"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/google/uuid"
)

// PaymentGateway creates one hosted checkout session covering the grand total
// of the whole purchase, never per-vendor amounts.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*domain.PaymentSession, error)
}

type SessionRequest struct {
	Amount   float64
	Currency string
	OrderIDs []uuid.UUID
	UserID   string
	Origin   string
}

// EventPublisher emits events after orders are committed. Publishing is best
// effort: a checkout never fails on a publish error.
type EventPublisher interface {
	OrderCreated(ctx context.Context, event OrderCreatedEvent) error
}

type OrderCreatedEvent struct {
	OrderIDs      []uuid.UUID
	UserID        string
	GrandTotal    float64
	Currency      string
	PaymentMethod domain.PaymentMethod
}
