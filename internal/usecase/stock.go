package usecase

import (
	"context"
	"fmt"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/gocartvn/checkout-api/internal/repository"
	"github.com/google/uuid"
)

// MaxStockCheckIDs caps how many product ids a single stock-check call accepts.
const MaxStockCheckIDs = 100

type StockService struct {
	store repository.Store
}

func NewStockService(store repository.Store) *StockService {
	return &StockService{store: store}
}

// Verify confirms every ordered product exists and is sellable. Missing
// products fail immediately; out-of-stock products are collected into one
// aggregate error so the caller can report every offending item at once.
// Read-only: nothing is reserved.
func (s *StockService) Verify(ctx context.Context, lines []domain.CartLine) (map[uuid.UUID]domain.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	products, err := s.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("verify stock: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var outOfStock []string
	for _, id := range ids {
		product, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		if !product.InStock {
			name := product.Name
			if name == "" {
				name = product.ID.String()
			}
			outOfStock = append(outOfStock, name)
		}
	}
	if len(outOfStock) > 0 {
		return nil, &domain.OutOfStockError{Products: outOfStock}
	}

	return byID, nil
}

type StockStatus struct {
	InStock  bool
	Name     string
	Price    float64
	Images   []string
	Category string
}

// Status reports availability and display details for up to MaxStockCheckIDs
// products. Ids are deduplicated and unparsable entries are dropped; unknown
// products are simply absent from the result.
func (s *StockService) Status(ctx context.Context, productIDs []string) (map[string]StockStatus, error) {
	ids := make([]uuid.UUID, 0, len(productIDs))
	seen := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, raw := range productIDs {
		if len(ids) == MaxStockCheckIDs {
			break
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return map[string]StockStatus{}, nil
	}

	products, err := s.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check stock: %w", err)
	}

	status := make(map[string]StockStatus, len(products))
	for _, p := range products {
		status[p.ID.String()] = StockStatus{
			InStock:  p.InStock,
			Name:     p.Name,
			Price:    p.Price,
			Images:   p.Images,
			Category: p.Category,
		}
	}
	return status, nil
}
