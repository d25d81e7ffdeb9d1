package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateOrder inserts one vendor order together with its items in a single
// transaction. Each vendor order of a checkout is its own unit of work, so a
// failure here never touches orders already committed for other vendors.
func (s *store) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now().UTC()

	return s.ExecTx(ctx, func(tx pgx.Tx) error {
		orderQuery := `
			INSERT INTO orders (id, user_id, store_id, address_id, total, payment_method,
				is_paid, status, coupon_applied, coupon_code, coupon_discount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`
		_, err := tx.Exec(ctx, orderQuery,
			order.ID,
			order.UserID,
			order.StoreID,
			order.AddressID,
			order.Total,
			string(order.PaymentMethod),
			order.IsPaid,
			string(order.Status),
			order.Coupon.Applied,
			order.Coupon.Code,
			order.Coupon.DiscountPercent,
			order.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		itemQuery := `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`
		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID

			_, err := tx.Exec(ctx, itemQuery, item.OrderID, item.ProductID, item.Quantity, item.Price)
			if err != nil {
				return fmt.Errorf("insert order item %s: %w", item.ProductID, err)
			}
		}
		return nil
	})
}

// ListOrdersByUser returns the shopper's orders that are either deferred
// payment or gateway-paid-and-confirmed, newest first, with items, product
// details and the shipping address attached.
func (s *store) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	ordersQuery := `
		SELECT id, user_id, store_id, address_id, total, payment_method,
			is_paid, status, coupon_applied, coupon_code, coupon_discount, created_at
		FROM orders
		WHERE user_id = $1
			AND (payment_method = 'DEFERRED' OR (payment_method = 'GATEWAY' AND is_paid))
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, ordersQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("select orders for user %s: %w", userID, err)
	}
	defer rows.Close()

	ordersByID := make(map[uuid.UUID]*domain.Order)
	var orderIDs []uuid.UUID
	addressIDs := make(map[uuid.UUID]struct{})

	for rows.Next() {
		var o domain.Order
		err := rows.Scan(
			&o.ID, &o.UserID, &o.StoreID, &o.AddressID, &o.Total, &o.PaymentMethod,
			&o.IsPaid, &o.Status, &o.Coupon.Applied, &o.Coupon.Code, &o.Coupon.DiscountPercent,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Items = make([]domain.OrderItem, 0)
		ordersByID[o.ID] = &o
		orderIDs = append(orderIDs, o.ID)
		addressIDs[o.AddressID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	if len(orderIDs) == 0 {
		return []domain.Order{}, nil
	}

	itemsQuery := `
		SELECT oi.order_id, oi.product_id, oi.quantity, oi.price,
			p.id, p.store_id, p.name, p.category, p.price, p.images, p.in_stock
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
	`

	itemRows, err := s.pool.Query(ctx, itemsQuery, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.OrderItem
		var p domain.Product
		err := itemRows.Scan(
			&item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&p.ID, &p.StoreID, &p.Name, &p.Category, &p.Price, &p.Images, &p.InStock,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item.Product = &p

		if order, ok := ordersByID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	addresses, err := s.addressesByIDs(ctx, addressIDs)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		order := ordersByID[id]
		if addr, ok := addresses[order.AddressID]; ok {
			order.Address = addr
		}
		result = append(result, *order)
	}
	return result, nil
}

func (s *store) addressesByIDs(ctx context.Context, idSet map[uuid.UUID]struct{}) (map[uuid.UUID]*domain.Address, error) {
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	query := `
		SELECT id, user_id, name, phone, street, city, state, zip, country
		FROM addresses
		WHERE id = ANY($1)
	`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("select addresses: %w", err)
	}
	defer rows.Close()

	addresses := make(map[uuid.UUID]*domain.Address, len(ids))
	for rows.Next() {
		var a domain.Address
		err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Street, &a.City, &a.State, &a.Zip, &a.Country)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses[a.ID] = &a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}
	return addresses, nil
}
