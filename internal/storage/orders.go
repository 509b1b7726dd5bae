package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/candylab/sweetbot/internal/models"
)

// Orders appends finalized orders and advances their status.
type Orders struct {
	db *sqlx.DB
}

// NewOrders constructs the order repository.
func NewOrders(db *sqlx.DB) *Orders {
	return &Orders{db: db}
}

// Create appends a new order and returns its identifier. The item snapshot
// is stored as given; it is never recomputed from the catalog afterwards.
func (r *Orders) Create(ctx context.Context, o *models.Order) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO orders (user_id, name, phone, address, items, total, payment_method, status, lang)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		o.UserID, o.Name, o.Phone, o.Address, o.Items, o.Total, o.PaymentMethod, o.Status, o.Lang,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: insert order: %w", err)
	}
	return id, nil
}

// ByID fetches one order. Returns (nil, nil) when the identifier does not resolve.
func (r *Orders) ByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := r.db.GetContext(ctx, &o,
		`SELECT id, user_id, name, phone, address, items, total, payment_method, status, lang, created_at
		   FROM orders WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: order by id: %w", err)
	}
	return &o, nil
}

// UpdateStatus sets the status of one order. Returns false when the order
// does not exist.
func (r *Orders) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("storage: update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: update order status: %w", err)
	}
	return n > 0, nil
}

// Recent returns the newest orders, most recent first.
func (r *Orders) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []models.Order
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, user_id, name, phone, address, items, total, payment_method, status, lang, created_at
		   FROM orders ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: recent orders: %w", err)
	}
	return out, nil
}
