package http

import (
	"time"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/gocartvn/checkout-api/internal/usecase"
)

type PlaceOrderRequest struct {
	AddressID     string             `json:"addressId" validate:"required,uuid"`
	Items         []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	CouponCode    string             `json:"couponCode"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=DEFERRED GATEWAY"`
}

type OrderLineRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type CouponCheckRequest struct {
	Code string `json:"code" validate:"required"`
}

type StockCheckRequest struct {
	ProductIDs []string `json:"productIds" validate:"required"`
}

type UpdateCartRequest struct {
	Cart domain.Cart `json:"cart"`
}

type SessionResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CouponResponse struct {
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	ForNewUser      bool      `json:"forNewUser"`
	ForMember       bool      `json:"forMember"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

type StockStatusResponse struct {
	InStock  bool     `json:"inStock"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Images   []string `json:"images"`
	Category string   `json:"category"`
}

type ProductResponse struct {
	ID       string   `json:"id"`
	StoreID  string   `json:"storeId"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Images   []string `json:"images"`
	InStock  bool     `json:"inStock"`
}

type OrderItemResponse struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     float64          `json:"price"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type AddressResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type CouponSnapshotResponse struct {
	Applied         bool    `json:"applied"`
	Code            string  `json:"code,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
}

type OrderResponse struct {
	ID            string                 `json:"id"`
	StoreID       string                 `json:"storeId"`
	AddressID     string                 `json:"addressId"`
	Total         float64                `json:"total"`
	PaymentMethod string                 `json:"paymentMethod"`
	IsPaid        bool                   `json:"isPaid"`
	Status        string                 `json:"status"`
	Coupon        CouponSnapshotResponse `json:"coupon"`
	OrderItems    []OrderItemResponse    `json:"orderItems"`
	Address       *AddressResponse       `json:"address,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

func toCouponResponse(c *domain.Coupon) CouponResponse {
	return CouponResponse{
		Code:            c.Code,
		Description:     c.Description,
		DiscountPercent: c.DiscountPercent,
		ForNewUser:      c.ForNewUser,
		ForMember:       c.ForMember,
		ExpiresAt:       c.ExpiresAt,
	}
}

func toStockStatusResponse(status map[string]usecase.StockStatus) map[string]StockStatusResponse {
	resp := make(map[string]StockStatusResponse, len(status))
	for id, s := range status {
		images := s.Images
		if images == nil {
			images = []string{}
		}
		resp[id] = StockStatusResponse{
			InStock:  s.InStock,
			Name:     s.Name,
			Price:    s.Price,
			Images:   images,
			Category: s.Category,
		}
	}
	return resp
}

func toOrderResponse(o domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		itemResp := OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			images := item.Product.Images
			if images == nil {
				images = []string{}
			}
			itemResp.Product = &ProductResponse{
				ID:       item.Product.ID.String(),
				StoreID:  item.Product.StoreID.String(),
				Name:     item.Product.Name,
				Category: item.Product.Category,
				Price:    item.Product.Price,
				Images:   images,
				InStock:  item.Product.InStock,
			}
		}
		items = append(items, itemResp)
	}

	resp := OrderResponse{
		ID:            o.ID.String(),
		StoreID:       o.StoreID.String(),
		AddressID:     o.AddressID.String(),
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		IsPaid:        o.IsPaid,
		Status:        string(o.Status),
		Coupon: CouponSnapshotResponse{
			Applied:         o.Coupon.Applied,
			Code:            o.Coupon.Code,
			DiscountPercent: o.Coupon.DiscountPercent,
		},
		OrderItems: items,
		CreatedAt:  o.CreatedAt,
	}
	if o.Address != nil {
		resp.Address = &AddressResponse{
			ID:      o.Address.ID.String(),
			Name:    o.Address.Name,
			Phone:   o.Address.Phone,
			Street:  o.Address.Street,
			City:    o.Address.City,
			State:   o.Address.State,
			Zip:     o.Address.Zip,
			Country: o.Address.Country,
		}
	}
	return resp
}
