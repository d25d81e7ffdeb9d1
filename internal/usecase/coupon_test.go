package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NoCode(t *testing.T) {
	svc := NewCouponService(&mockStore{})

	coupon, err := svc.Resolve(context.Background(), "", "user-1", false)
	require.NoError(t, err)
	assert.Nil(t, coupon)

	coupon, err = svc.Resolve(context.Background(), "   ", "user-1", false)
	require.NoError(t, err)
	assert.Nil(t, coupon)
}

func TestResolve_CanonicalizesCode(t *testing.T) {
	var requested string
	store := &mockStore{
		getCouponByCodeFn: func(ctx context.Context, code string) (*domain.Coupon, error) {
			requested = code
			return &domain.Coupon{Code: code, DiscountPercent: 10, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}

	svc := NewCouponService(store)
	coupon, err := svc.Resolve(context.Background(), "  save10 ", "user-1", false)

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", requested)
	assert.Equal(t, "SAVE10", coupon.Code)
}

func TestResolve_NotFound(t *testing.T) {
	svc := NewCouponService(&mockStore{})

	_, err := svc.Resolve(context.Background(), "NOPE", "user-1", false)
	require.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestResolve_Expired(t *testing.T) {
	store := &mockStore{
		getCouponByCodeFn: func(ctx context.Context, code string) (*domain.Coupon, error) {
			return &domain.Coupon{Code: code, ExpiresAt: time.Now().Add(-time.Minute)}, nil
		},
	}

	svc := NewCouponService(store)
	_, err := svc.Resolve(context.Background(), "OLD", "user-1", false)
	require.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestResolve_NewUserRestriction(t *testing.T) {
	coupon := &domain.Coupon{Code: "WELCOME", ForNewUser: true, ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("rejected with prior orders", func(t *testing.T) {
		store := &mockStore{
			getCouponByCodeFn: func(ctx context.Context, code string) (*domain.Coupon, error) {
				return coupon, nil
			},
			countOrdersByUserFn: func(ctx context.Context, userID string) (int, error) {
				return 1, nil
			},
		}

		svc := NewCouponService(store)
		_, err := svc.Resolve(context.Background(), "WELCOME", "user-1", false)
		require.ErrorIs(t, err, domain.ErrCouponRestricted)
	})

	t.Run("accepted with zero prior orders", func(t *testing.T) {
		store := &mockStore{
			getCouponByCodeFn: func(ctx context.Context, code string) (*domain.Coupon, error) {
				return coupon, nil
			},
			countOrdersByUserFn: func(ctx context.Context, userID string) (int, error) {
				return 0, nil
			},
		}

		svc := NewCouponService(store)
		resolved, err := svc.Resolve(context.Background(), "WELCOME", "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, "WELCOME", resolved.Code)
	})
}

func TestResolve_MemberRestriction(t *testing.T) {
	store := &mockStore{
		getCouponByCodeFn: func(ctx context.Context, code string) (*domain.Coupon, error) {
			return &domain.Coupon{Code: code, ForMember: true, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	svc := NewCouponService(store)

	_, err := svc.Resolve(context.Background(), "PLUS", "user-1", false)
	require.ErrorIs(t, err, domain.ErrCouponRestricted)

	resolved, err := svc.Resolve(context.Background(), "PLUS", "user-1", true)
	require.NoError(t, err)
	assert.Equal(t, "PLUS", resolved.Code)
}

func TestCheck_LooksUpMembership(t *testing.T) {
	store := &mockStore{
		getUserFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, IsMember: true, Cart: domain.Cart{}}, nil
		},
		getCouponByCodeFn: func(ctx context.Context, code string) (*domain.Coupon, error) {
			return &domain.Coupon{Code: code, ForMember: true, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}

	svc := NewCouponService(store)
	coupon, err := svc.Check(context.Background(), "PLUS", "member-1")
	require.NoError(t, err)
	assert.Equal(t, "PLUS", coupon.Code)
}
