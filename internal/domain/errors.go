package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCouponRestricted = errors.New("coupon is restricted")
	ErrAddressNotFound  = errors.New("address not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyCart        = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("item quantity must be a positive integer")
)

// OutOfStockError names every offending product so the shopper can remove
// exactly those items in one pass.
type OutOfStockError struct {
	Products []string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf(
		"the following products are out of stock: %s. Please remove them from your cart",
		strings.Join(e.Products, ", "),
	)
}

// GatewayError wraps a payment-gateway failure. Orders created before the
// session attempt stay committed and unpaid for later reconciliation.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
