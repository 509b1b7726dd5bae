// Package storage implements Postgres-backed repositories for the catalog,
// carts, and orders. Multilingual fields and item lists live in JSONB columns.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/candylab/sweetbot/internal/models"
)

// Products reads and writes catalog records.
type Products struct {
	db *sqlx.DB
}

// NewProducts constructs the catalog repository.
func NewProducts(db *sqlx.DB) *Products {
	return &Products{db: db}
}

// ByID fetches one product. Returns (nil, nil) when the identifier does not resolve.
func (r *Products) ByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.GetContext(ctx, &p,
		`SELECT id, title, description, price, category, image, special_options, available, created_at
		   FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: product by id: %w", err)
	}
	return &p, nil
}

// ListAvailable returns available products of a category in stable id order.
// An empty result is valid.
func (r *Products) ListAvailable(ctx context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, title, description, price, category, image, special_options, available, created_at
		   FROM products WHERE category = $1 AND available ORDER BY id`, category)
	if err != nil {
		return nil, fmt.Errorf("storage: list products: %w", err)
	}
	return out, nil
}

// Insert stores a new product and returns its identifier.
func (r *Products) Insert(ctx context.Context, p *models.Product) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO products (title, description, price, category, image, special_options, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		p.Title, p.Description, p.Price, p.Category, p.Image, p.SpecialOptions, p.Available,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: insert product: %w", err)
	}
	return id, nil
}

// Count returns the number of catalog records.
func (r *Products) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("storage: count products: %w", err)
	}
	return n, nil
}
