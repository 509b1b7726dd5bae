package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/candylab/sweetbot/internal/models"
)

// Carts reads and writes per-user carts. A cart row is created lazily on the
// first add and deleted when an order is finalized.
type Carts struct {
	db *sqlx.DB
}

// NewCarts constructs the cart repository.
func NewCarts(db *sqlx.DB) *Carts {
	return &Carts{db: db}
}

// Get fetches the user's cart. Returns (nil, nil) when none exists.
func (r *Carts) Get(ctx context.Context, userID int64) (*models.Cart, error) {
	var c models.Cart
	err := r.db.GetContext(ctx, &c,
		`SELECT user_id, items, lang, updated_at FROM carts WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cart by user: %w", err)
	}
	return &c, nil
}

// AddItem merges a product into the user's cart inside a transaction. The row
// is locked for the duration so rapid double-taps from one user cannot lose
// the read-modify-write increment.
func (r *Carts) AddItem(ctx context.Context, userID, productID int64, lang string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin cart tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var cart models.Cart
	err = tx.GetContext(ctx, &cart,
		`SELECT user_id, items, lang, updated_at FROM carts WHERE user_id = $1 FOR UPDATE`, userID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		cart = models.Cart{UserID: userID}
	case err != nil:
		return fmt.Errorf("storage: lock cart: %w", err)
	}

	cart.Add(productID)
	cart.Lang = lang

	_, err = tx.ExecContext(ctx,
		`INSERT INTO carts (user_id, items, lang, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id) DO UPDATE
		 SET items = EXCLUDED.items, lang = EXCLUDED.lang, updated_at = NOW()`,
		cart.UserID, cart.Items, cart.Lang)
	if err != nil {
		return fmt.Errorf("storage: upsert cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit cart tx: %w", err)
	}
	return nil
}

// Delete removes the user's cart. Deleting a missing cart is not an error.
func (r *Carts) Delete(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("storage: delete cart: %w", err)
	}
	return nil
}
