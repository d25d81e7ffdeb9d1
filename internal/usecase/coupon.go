package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/gocartvn/checkout-api/internal/repository"
)

type CouponService struct {
	store repository.Store
}

func NewCouponService(store repository.Store) *CouponService {
	return &CouponService{store: store}
}

// Resolve validates a coupon code for the given shopper and returns the coupon
// terms, or (nil, nil) when no code was supplied. It never mutates the coupon:
// usage counting happens after a deferred order finalizes, or out of band once
// a gateway payment is confirmed.
func (s *CouponService) Resolve(ctx context.Context, code, userID string, isMember bool) (*domain.Coupon, error) {
	code = CanonicalCode(code)
	if code == "" {
		return nil, nil
	}

	coupon, err := s.store.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !coupon.ExpiresAt.After(time.Now()) {
		return nil, domain.ErrCouponNotFound
	}

	if coupon.ForNewUser {
		prior, err := s.store.CountOrdersByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("count prior orders: %w", err)
		}
		if prior > 0 {
			return nil, fmt.Errorf("%w: for new users only", domain.ErrCouponRestricted)
		}
	}

	if coupon.ForMember && !isMember {
		return nil, fmt.Errorf("%w: for members only", domain.ErrCouponRestricted)
	}

	return coupon, nil
}

// Check is the coupon-check endpoint flavor of Resolve: it looks up the
// shopper's membership entitlement itself.
func (s *CouponService) Check(ctx context.Context, code, userID string) (*domain.Coupon, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Resolve(ctx, code, userID, user.IsMember)
}

// CanonicalCode trims and uppercases a coupon code. Codes are stored and
// compared in canonical form only.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
