package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gocartvn/checkout-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	ExecTx(ctx context.Context, fn func(pgx.Tx) error) error

	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateCart(ctx context.Context, userID string, cart domain.Cart) error

	GetAddress(ctx context.Context, id uuid.UUID, userID string) (*domain.Address, error)

	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)

	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	IncrementCouponUsage(ctx context.Context, code string) error

	CountOrdersByUser(ctx context.Context, userID string) (int, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

func (s *store) ExecTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, is_member, cart
		FROM users
		WHERE id = $1
	`

	var u domain.User
	err := s.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.IsMember, &u.Cart)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user %s: %w", id, err)
	}

	if u.Cart == nil {
		u.Cart = domain.Cart{}
	}
	return &u, nil
}

func (s *store) UpdateCart(ctx context.Context, userID string, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}

	tag, err := s.pool.Exec(ctx, `UPDATE users SET cart = $2 WHERE id = $1`, userID, cart)
	if err != nil {
		return fmt.Errorf("update cart for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *store) GetAddress(ctx context.Context, id uuid.UUID, userID string) (*domain.Address, error) {
	query := `
		SELECT id, user_id, name, phone, street, city, state, zip, country
		FROM addresses
		WHERE id = $1 AND user_id = $2
	`

	var a domain.Address
	err := s.pool.QueryRow(ctx, query, id, userID).Scan(
		&a.ID, &a.UserID, &a.Name, &a.Phone, &a.Street, &a.City, &a.State, &a.Zip, &a.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("select address %s: %w", id, err)
	}
	return &a, nil
}

func (s *store) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	query := `
		SELECT id, store_id, name, category, price, images, in_stock
		FROM products
		WHERE id = ANY($1)
	`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Category, &p.Price, &p.Images, &p.InStock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (s *store) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `
		SELECT code, description, discount_percent, for_new_user, for_member, expires_at, used_count, created_at
		FROM coupons
		WHERE code = $1
	`

	var c domain.Coupon
	err := s.pool.QueryRow(ctx, query, code).Scan(
		&c.Code, &c.Description, &c.DiscountPercent, &c.ForNewUser, &c.ForMember,
		&c.ExpiresAt, &c.UsedCount, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("select coupon %s: %w", code, err)
	}
	return &c, nil
}

func (s *store) IncrementCouponUsage(ctx context.Context, code string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE coupons SET used_count = used_count + 1 WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("increment usage for coupon %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

func (s *store) CountOrdersByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM orders WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders for user %s: %w", userID, err)
	}
	return count, nil
}
