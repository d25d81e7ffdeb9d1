package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_AllInStock(t *testing.T) {
	p1 := domain.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 10, InStock: true}
	p2 := domain.Product{ID: uuid.New(), StoreID: uuid.New(), Price: 20, InStock: true}

	svc := NewStockService(&mockStore{getProductsByIDsFn: catalog(p1, p2)})
	products, err := svc.Verify(context.Background(), []domain.CartLine{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, p1, products[p1.ID])
}

func TestVerify_AggregatesAllOutOfStock(t *testing.T) {
	p1 := domain.Product{ID: uuid.New(), Name: "Keyboard", InStock: false}
	p2 := domain.Product{ID: uuid.New(), Name: "Mouse", InStock: true}
	p3 := domain.Product{ID: uuid.New(), Name: "Webcam", InStock: false}

	svc := NewStockService(&mockStore{getProductsByIDsFn: catalog(p1, p2, p3)})
	_, err := svc.Verify(context.Background(), []domain.CartLine{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: 1},
		{ProductID: p3.ID, Quantity: 1},
	})

	var outOfStock *domain.OutOfStockError
	require.ErrorAs(t, err, &outOfStock)
	assert.Equal(t, []string{"Keyboard", "Webcam"}, outOfStock.Products)
	assert.Contains(t, err.Error(), "Keyboard")
	assert.Contains(t, err.Error(), "Webcam")
}

func TestVerify_FallsBackToIDForUnnamedProducts(t *testing.T) {
	p := domain.Product{ID: uuid.New(), InStock: false}

	svc := NewStockService(&mockStore{getProductsByIDsFn: catalog(p)})
	_, err := svc.Verify(context.Background(), []domain.CartLine{{ProductID: p.ID, Quantity: 1}})

	var outOfStock *domain.OutOfStockError
	require.ErrorAs(t, err, &outOfStock)
	assert.Equal(t, []string{p.ID.String()}, outOfStock.Products)
}

func TestVerify_MissingProduct(t *testing.T) {
	missing := uuid.New()

	svc := NewStockService(&mockStore{getProductsByIDsFn: catalog()})
	_, err := svc.Verify(context.Background(), []domain.CartLine{{ProductID: missing, Quantity: 1}})

	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Contains(t, err.Error(), missing.String())
}

func TestStatus_DeduplicatesAndSkipsInvalid(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Name: "Keyboard", Price: 500, Category: "accessories", InStock: true}

	var queried []uuid.UUID
	store := &mockStore{
		getProductsByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
			queried = ids
			return []domain.Product{p}, nil
		},
	}

	svc := NewStockService(store)
	status, err := svc.Status(context.Background(), []string{
		p.ID.String(),
		p.ID.String(),
		"not-a-uuid",
		"",
	})

	require.NoError(t, err)
	assert.Len(t, queried, 1)
	require.Contains(t, status, p.ID.String())
	assert.True(t, status[p.ID.String()].InStock)
	assert.Equal(t, "Keyboard", status[p.ID.String()].Name)
	assert.Equal(t, "accessories", status[p.ID.String()].Category)
}

func TestStatus_EmptyInput(t *testing.T) {
	svc := NewStockService(&mockStore{})

	status, err := svc.Status(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestStatus_CapsRequestedIDs(t *testing.T) {
	ids := make([]string, 0, MaxStockCheckIDs+20)
	for i := 0; i < MaxStockCheckIDs+20; i++ {
		ids = append(ids, uuid.New().String())
	}

	var queried []uuid.UUID
	store := &mockStore{
		getProductsByIDsFn: func(ctx context.Context, requested []uuid.UUID) ([]domain.Product, error) {
			queried = requested
			return nil, nil
		},
	}

	svc := NewStockService(store)
	_, err := svc.Status(context.Background(), ids)

	require.NoError(t, err)
	assert.Len(t, queried, MaxStockCheckIDs, fmt.Sprintf("at most %d ids per call", MaxStockCheckIDs))
}

func TestStatus_UnknownProductsAbsent(t *testing.T) {
	known := domain.Product{ID: uuid.New(), InStock: true}
	unknown := uuid.New()

	svc := NewStockService(&mockStore{getProductsByIDsFn: catalog(known)})
	status, err := svc.Status(context.Background(), []string{known.ID.String(), unknown.String()})

	require.NoError(t, err)
	assert.Contains(t, status, known.ID.String())
	assert.NotContains(t, status, unknown.String())
}
