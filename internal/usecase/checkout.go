package usecase

import (
	"context"
	"fmt"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/gocartvn/checkout-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CheckoutService reconciles cart, inventory, coupon, stores and the payment
// gateway into persisted vendor orders. Steps run strictly in order: stock
// verification, coupon validation, vendor split, pricing, persistence, payment
// branch, finalization.
type CheckoutService struct {
	store    repository.Store
	stock    *StockService
	coupons  *CouponService
	payments PaymentGateway
	events   EventPublisher

	shippingFee float64
	currency    string
}

func NewCheckoutService(
	store repository.Store,
	stock *StockService,
	coupons *CouponService,
	payments PaymentGateway,
	events EventPublisher,
	shippingFee float64,
	currency string,
) *CheckoutService {
	return &CheckoutService{
		store:       store,
		stock:       stock,
		coupons:     coupons,
		payments:    payments,
		events:      events,
		shippingFee: shippingFee,
		currency:    currency,
	}
}

type CheckoutInput struct {
	UserID        string
	AddressID     uuid.UUID
	Lines         []domain.CartLine
	CouponCode    string
	PaymentMethod domain.PaymentMethod
	Origin        string
}

type CheckoutResult struct {
	OrderIDs   []uuid.UUID
	GrandTotal float64
	Payment    domain.PaymentOutcome
}

// PlaceOrder runs one checkout. All validation happens before any persistence;
// after the first vendor order commits there is no rollback path, only the
// optional payment session can expire.
func (s *CheckoutService) PlaceOrder(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %s", domain.ErrInvalidQuantity, line.ProductID)
		}
	}

	user, err := s.store.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.GetAddress(ctx, in.AddressID, in.UserID); err != nil {
		return nil, err
	}

	coupon, err := s.coupons.Resolve(ctx, in.CouponCode, in.UserID, user.IsMember)
	if err != nil {
		return nil, err
	}

	products, err := s.stock.Verify(ctx, in.Lines)
	if err != nil {
		return nil, err
	}

	groups := SplitByStore(in.Lines, products)
	priced, grandTotal := PriceGroups(groups, coupon, s.shippingFee, user.IsMember)

	snapshot := domain.CouponSnapshot{}
	if coupon != nil {
		snapshot = domain.CouponSnapshot{
			Applied:         true,
			Code:            coupon.Code,
			DiscountPercent: coupon.DiscountPercent,
		}
	}

	orderIDs := make([]uuid.UUID, 0, len(priced))
	for _, group := range priced {
		order := &domain.Order{
			ID:            uuid.New(),
			UserID:        in.UserID,
			StoreID:       group.StoreID,
			AddressID:     in.AddressID,
			Total:         group.Total,
			PaymentMethod: in.PaymentMethod,
			Status:        domain.StatusPlaced,
			Coupon:        snapshot,
			Items:         group.Items,
		}

		// Each vendor order is its own transaction. Orders committed for
		// earlier vendors stand even if a later one fails.
		if err := s.store.CreateOrder(ctx, order); err != nil {
			return nil, fmt.Errorf("create order for store %s: %w", group.StoreID, err)
		}
		orderIDs = append(orderIDs, order.ID)
	}

	log.Info().
		Str("user_id", in.UserID).
		Int("orders", len(orderIDs)).
		Float64("grand_total", grandTotal).
		Str("payment_method", string(in.PaymentMethod)).
		Msg("orders created")

	s.publishCreated(ctx, in, orderIDs, grandTotal)

	if in.PaymentMethod == domain.PaymentGateway {
		session, err := s.payments.CreateSession(ctx, SessionRequest{
			Amount:   grandTotal,
			Currency: s.currency,
			OrderIDs: orderIDs,
			UserID:   in.UserID,
			Origin:   in.Origin,
		})
		if err != nil {
			// Created orders stay committed and unpaid for reconciliation.
			return nil, &domain.GatewayError{Err: err}
		}

		return &CheckoutResult{
			OrderIDs:   orderIDs,
			GrandTotal: grandTotal,
			Payment:    domain.PaymentOutcome{Pending: true, Session: session},
		}, nil
	}

	s.finalize(ctx, in.UserID, coupon)

	return &CheckoutResult{
		OrderIDs:   orderIDs,
		GrandTotal: grandTotal,
		Payment:    domain.PaymentOutcome{},
	}, nil
}

// finalize runs the post-commit steps of a deferred-payment checkout: coupon
// usage increment, then cart clear. Both are best effort; the orders are
// already durable, so failures are logged and tolerated (a stale cart is a
// recoverable inconsistency, an unpersisted order is not).
func (s *CheckoutService) finalize(ctx context.Context, userID string, coupon *domain.Coupon) {
	if coupon != nil {
		if err := s.store.IncrementCouponUsage(ctx, coupon.Code); err != nil {
			log.Error().Err(err).Str("coupon", coupon.Code).Msg("failed to increment coupon usage")
		}
	}

	if err := s.store.UpdateCart(ctx, userID, domain.Cart{}); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
	}
}

func (s *CheckoutService) publishCreated(ctx context.Context, in CheckoutInput, orderIDs []uuid.UUID, grandTotal float64) {
	if s.events == nil {
		return
	}

	event := OrderCreatedEvent{
		OrderIDs:      orderIDs,
		UserID:        in.UserID,
		GrandTotal:    grandTotal,
		Currency:      s.currency,
		PaymentMethod: in.PaymentMethod,
	}
	if err := s.events.OrderCreated(ctx, event); err != nil {
		log.Warn().Err(err).Str("user_id", in.UserID).Msg("failed to publish order created event")
	}
}

// ListOrders returns the shopper's visible orders: deferred-payment ones, and
// gateway ones only once confirmed paid. Newest first.
func (s *CheckoutService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.store.ListOrdersByUser(ctx, userID)
}
