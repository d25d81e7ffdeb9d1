package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/gocartvn/checkout-api/internal/usecase"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	checkout *usecase.CheckoutService
	coupons  *usecase.CouponService
	stock    *usecase.StockService
	carts    *usecase.CartService
	validate *validator.Validate
}

func NewHandler(
	checkout *usecase.CheckoutService,
	coupons *usecase.CouponService,
	stock *usecase.StockService,
	carts *usecase.CartService,
) *Handler {
	return &Handler{
		checkout: checkout,
		coupons:  coupons,
		stock:    stock,
		carts:    carts,
		validate: validator.New(),
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/stock-check", h.CheckStock)

	r.Group(func(r chi.Router) {
		r.Use(Authenticate)
		r.Post("/orders", h.PlaceOrder)
		r.Get("/orders", h.ListOrders)
		r.Post("/coupon", h.CheckCoupon)
		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.UpdateCart)
	})
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "missing or invalid required fields")
		return
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid address id")
		return
	}

	lines := make([]domain.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid product id")
			return
		}
		lines = append(lines, domain.CartLine{ProductID: productID, Quantity: item.Quantity})
	}

	result, err := h.checkout.PlaceOrder(r.Context(), usecase.CheckoutInput{
		UserID:        userID(r.Context()),
		AddressID:     addressID,
		Lines:         lines,
		CouponCode:    req.CouponCode,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Origin:        r.Header.Get("Origin"),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if result.Payment.Pending {
		respondJSON(w, http.StatusOK, map[string]any{
			"session": SessionResponse{
				URL:       result.Payment.Session.URL,
				ExpiresAt: result.Payment.Session.ExpiresAt,
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order placed successfully"})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkout.ListOrders(r.Context(), userID(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	respondJSON(w, http.StatusOK, map[string]any{"orders": resp})
}

func (h *Handler) CheckCoupon(w http.ResponseWriter, r *http.Request) {
	var req CouponCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "code is required")
		return
	}

	coupon, err := h.coupons.Check(r.Context(), req.Code, userID(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if coupon == nil {
		// A blank code canonicalizes to nothing to look up.
		respondError(w, http.StatusNotFound, domain.ErrCouponNotFound.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"coupon": toCouponResponse(coupon)})
}

func (h *Handler) CheckStock(w http.ResponseWriter, r *http.Request) {
	var req StockCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductIDs == nil {
		respondError(w, http.StatusBadRequest, "productIds is required")
		return
	}

	status, err := h.stock.Status(r.Context(), req.ProductIDs)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"stockStatus": toStockStatusResponse(status)})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Get(r.Context(), userID(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"cart": cart})
}

func (h *Handler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.carts.Update(r.Context(), userID(r.Context()), req.Cart); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Cart updated successfully"})
}

func respondDomainError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		respondError(w, status, "internal server error")
		return
	}
	respondError(w, status, err.Error())
}

func statusForError(err error) int {
	var outOfStock *domain.OutOfStockError
	var gateway *domain.GatewayError

	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCouponNotFound),
		errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized
	case errors.As(err, &outOfStock),
		errors.As(err, &gateway),
		errors.Is(err, domain.ErrCouponRestricted),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
