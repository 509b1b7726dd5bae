package service

import (
	"context"
	"log/slog"

	"github.com/candylab/sweetbot/core/logger"
	"github.com/candylab/sweetbot/internal/models"
)

// CartStore is the cart persistence required by services.
type CartStore interface {
	Get(ctx context.Context, userID int64) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID int64, lang string) error
	Delete(ctx context.Context, userID int64) error
}

// CartLine is one resolved cart row for display.
type CartLine struct {
	Product models.Product
	Title   string
	Qty     int
}

// CartView is the resolved cart with its running total.
type CartView struct {
	Lines []CartLine
	Total int64
}

// Cart adds products to per-user carts and resolves them for display.
type Cart struct {
	products    ProductReader
	carts       CartStore
	defaultLang string
}

// NewCart constructs the cart service.
func NewCart(products ProductReader, carts CartStore, defaultLang string) *Cart {
	return &Cart{products: products, carts: carts, defaultLang: defaultLang}
}

// Add merges a product into the user's cart, creating the cart lazily.
// Adding the same product N times yields one line with quantity N.
func (s *Cart) Add(ctx context.Context, userID, productID int64, lang string) error {
	p, err := s.products.ByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProductNotFound
	}

	if err := s.carts.AddItem(ctx, userID, productID, lang); err != nil {
		return err
	}

	logger.Debug(ctx, "service.cart", "cart.add",
		slog.Int64("user_id", userID),
		slog.Int64("product_id", productID),
	)
	return nil
}

// View resolves the user's cart against the live catalog. Lines whose
// product no longer resolves are silently skipped. A missing or empty cart
// fails with ErrEmptyCart.
func (s *Cart) View(ctx context.Context, userID int64, lang string) (*CartView, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	view := &CartView{}
	for _, item := range cart.Items {
		p, err := s.products.ByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		view.Lines = append(view.Lines, CartLine{
			Product: *p,
			Title:   p.Title.Resolve(lang, s.defaultLang),
			Qty:     item.Qty,
		})
		view.Total += p.Price * int64(item.Qty)
	}

	logger.Debug(ctx, "service.cart", "cart.view",
		slog.Int64("user_id", userID),
		slog.Int("items", len(view.Lines)),
		slog.Int64("total", view.Total),
	)
	return view, nil
}
