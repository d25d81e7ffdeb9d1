package usecase

import (
	"context"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/gocartvn/checkout-api/internal/repository"
)

type CartService struct {
	store repository.Store
}

func NewCartService(store repository.Store) *CartService {
	return &CartService{store: store}
}

func (s *CartService) Get(ctx context.Context, userID string) (domain.Cart, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// Update replaces the stored cart wholesale. Quantities of zero or less drop
// the line instead of persisting it.
func (s *CartService) Update(ctx context.Context, userID string, cart domain.Cart) error {
	cleaned := domain.Cart{}
	for productID, quantity := range cart {
		if quantity > 0 {
			cleaned[productID] = quantity
		}
	}
	return s.store.UpdateCart(ctx, userID, cleaned)
}
