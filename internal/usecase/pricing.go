package usecase

import (
	"math"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/google/uuid"
)

// VendorGroup is one store's slice of a checkout, with every line carrying the
// price captured at order time.
type VendorGroup struct {
	StoreID uuid.UUID
	Items   []domain.OrderItem
}

type PricedGroup struct {
	VendorGroup
	Total float64
}

// SplitByStore partitions cart lines by owning store. Groups keep the
// first-seen store order and lines keep their cart order, so the shipping fee
// lands on a deterministic group. Repeated lines for the same product merge
// into one item; an order never carries two lines for one product.
func SplitByStore(lines []domain.CartLine, products map[uuid.UUID]domain.Product) []VendorGroup {
	var groups []VendorGroup
	index := make(map[uuid.UUID]int)
	itemIndex := make(map[uuid.UUID]int)

	for _, line := range lines {
		product := products[line.ProductID]

		i, ok := index[product.StoreID]
		if !ok {
			i = len(groups)
			index[product.StoreID] = i
			groups = append(groups, VendorGroup{StoreID: product.StoreID})
		}

		if j, ok := itemIndex[line.ProductID]; ok {
			groups[i].Items[j].Quantity += line.Quantity
			continue
		}

		groups[i].Items = append(groups[i].Items, domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		itemIndex[line.ProductID] = len(groups[i].Items) - 1
	}
	return groups
}

// PriceGroups computes each vendor's total and the grand total. The coupon
// discount applies to every vendor subtotal; the flat shipping fee is charged
// exactly once across the whole checkout, on the first group, and waived
// entirely for members. Totals are rounded to two decimals before persistence
// and the grand total is the sum of the rounded vendor totals.
func PriceGroups(groups []VendorGroup, coupon *domain.Coupon, shippingFee float64, isMember bool) ([]PricedGroup, float64) {
	priced := make([]PricedGroup, 0, len(groups))
	grandTotal := 0.0
	shippingApplied := false

	for _, group := range groups {
		total := 0.0
		for _, item := range group.Items {
			total += item.Price * float64(item.Quantity)
		}

		if coupon != nil {
			total -= total * coupon.DiscountPercent / 100
		}
		if !isMember && !shippingApplied {
			total += shippingFee
			shippingApplied = true
		}

		total = round2(total)
		grandTotal += total
		priced = append(priced, PricedGroup{VendorGroup: group, Total: total})
	}

	return priced, round2(grandTotal)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
