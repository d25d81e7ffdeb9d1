package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentDeferred PaymentMethod = "DEFERRED"
	PaymentGateway  PaymentMethod = "GATEWAY"
)

type OrderStatus string

const (
	StatusPlaced     OrderStatus = "ORDER_PLACED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
)

// Cart maps productId to quantity. An empty map is an empty cart.
type Cart map[string]int

type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

type Product struct {
	ID       uuid.UUID
	StoreID  uuid.UUID
	Name     string
	Category string
	Price    float64
	Images   []string
	InStock  bool
}

type Coupon struct {
	Code            string
	Description     string
	DiscountPercent float64
	ForNewUser      bool
	ForMember       bool
	ExpiresAt       time.Time
	UsedCount       int
	CreatedAt       time.Time
}

// CouponSnapshot is the value copy of a coupon's terms frozen onto an order at
// creation time. Later coupon mutation or deletion never changes it.
type CouponSnapshot struct {
	Applied         bool
	Code            string
	DiscountPercent float64
}

type Order struct {
	ID            uuid.UUID
	UserID        string
	StoreID       uuid.UUID
	AddressID     uuid.UUID
	Total         float64
	PaymentMethod PaymentMethod
	IsPaid        bool
	Status        OrderStatus
	Coupon        CouponSnapshot
	Items         []OrderItem
	Address       *Address
	CreatedAt     time.Time
}

// OrderItem captures price at order time, not a live reference to the product.
type OrderItem struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     float64
	Product   *Product
}

type Address struct {
	ID      uuid.UUID
	UserID  string
	Name    string
	Phone   string
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

type User struct {
	ID       string
	Name     string
	Email    string
	IsMember bool
	Cart     Cart
}

// PaymentOutcome is the tagged result of the payment branch. A deferred order
// is finalized immediately; a gateway order stays pending until the external
// confirmation callback.
type PaymentOutcome struct {
	Pending bool
	Session *PaymentSession
}

type PaymentSession struct {
	URL       string
	ExpiresAt time.Time
}
