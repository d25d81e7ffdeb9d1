package usecase

import (
	"testing"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByStore(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	p1 := domain.Product{ID: uuid.New(), StoreID: storeA, Price: 10}
	p2 := domain.Product{ID: uuid.New(), StoreID: storeB, Price: 20}
	p3 := domain.Product{ID: uuid.New(), StoreID: storeA, Price: 30}

	products := map[uuid.UUID]domain.Product{p1.ID: p1, p2.ID: p2, p3.ID: p3}
	lines := []domain.CartLine{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: 2},
		{ProductID: p3.ID, Quantity: 3},
	}

	groups := SplitByStore(lines, products)

	require.Len(t, groups, 2)
	assert.Equal(t, storeA, groups[0].StoreID, "groups keep first-seen store order")
	assert.Equal(t, storeB, groups[1].StoreID)

	require.Len(t, groups[0].Items, 2)
	require.Len(t, groups[1].Items, 1)

	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	assert.Equal(t, len(lines), total, "every line belongs to exactly one group")

	assert.Equal(t, p1.ID, groups[0].Items[0].ProductID)
	assert.Equal(t, 10.0, groups[0].Items[0].Price, "line carries the live product price")
	assert.Equal(t, 3, groups[0].Items[1].Quantity)
}

func TestSplitByStore_MergesDuplicateLines(t *testing.T) {
	storeA := uuid.New()
	p := domain.Product{ID: uuid.New(), StoreID: storeA, Price: 10}

	groups := SplitByStore([]domain.CartLine{
		{ProductID: p.ID, Quantity: 1},
		{ProductID: p.ID, Quantity: 2},
	}, map[uuid.UUID]domain.Product{p.ID: p})

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, 3, groups[0].Items[0].Quantity)
}

func TestPriceGroups_ShippingChargedOnce(t *testing.T) {
	groups := []VendorGroup{
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 100, Quantity: 1}}},
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 200, Quantity: 1}}},
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 300, Quantity: 1}}},
	}

	priced, grand := PriceGroups(groups, nil, 50, false)

	require.Len(t, priced, 3)
	assert.Equal(t, 150.0, priced[0].Total, "first group carries the single shipping fee")
	assert.Equal(t, 200.0, priced[1].Total)
	assert.Equal(t, 300.0, priced[2].Total)
	assert.Equal(t, 650.0, grand)
}

func TestPriceGroups_SingleVendorStillShipsOnce(t *testing.T) {
	groups := []VendorGroup{
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 100, Quantity: 2}}},
	}

	priced, grand := PriceGroups(groups, nil, 50, false)

	require.Len(t, priced, 1)
	assert.Equal(t, 250.0, priced[0].Total)
	assert.Equal(t, 250.0, grand)
}

func TestPriceGroups_MemberWaivesShippingEverywhere(t *testing.T) {
	groups := []VendorGroup{
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 100, Quantity: 1}}},
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 200, Quantity: 1}}},
	}

	priced, grand := PriceGroups(groups, nil, 50, true)

	assert.Equal(t, 100.0, priced[0].Total)
	assert.Equal(t, 200.0, priced[1].Total)
	assert.Equal(t, 300.0, grand)
}

func TestPriceGroups_DiscountBeforeShipping(t *testing.T) {
	coupon := &domain.Coupon{Code: "SAVE10", DiscountPercent: 10}
	groups := []VendorGroup{
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 1000, Quantity: 1}}},
	}

	priced, grand := PriceGroups(groups, coupon, 50, false)

	// The discount applies to the subtotal only, never the shipping fee.
	assert.Equal(t, 950.0, priced[0].Total)
	assert.Equal(t, 950.0, grand)
}

func TestPriceGroups_RoundsPerVendor(t *testing.T) {
	coupon := &domain.Coupon{Code: "SAVE3", DiscountPercent: 3}
	groups := []VendorGroup{
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 33.33, Quantity: 1}}},
		{StoreID: uuid.New(), Items: []domain.OrderItem{{Price: 66.67, Quantity: 1}}},
	}

	priced, grand := PriceGroups(groups, coupon, 0, true)

	// 33.33*0.97 = 32.3301 -> 32.33; 66.67*0.97 = 64.6699 -> 64.67
	assert.Equal(t, 32.33, priced[0].Total)
	assert.Equal(t, 64.67, priced[1].Total)
	assert.Equal(t, 97.0, grand, "grand total is the sum of rounded vendor totals")
}
