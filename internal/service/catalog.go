package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/candylab/sweetbot/core/logger"
	"github.com/candylab/sweetbot/internal/models"
)

// Categories is the fixed set of catalog categories, in menu order.
var Categories = []string{"cakes", "pastries", "desserts"}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ProductReader is the catalog read access required by services.
type ProductReader interface {
	ByID(ctx context.Context, id int64) (*models.Product, error)
	ListAvailable(ctx context.Context, category string) ([]models.Product, error)
}

// ProductWriter is the catalog write access required for admin insertion.
type ProductWriter interface {
	Insert(ctx context.Context, p *models.Product) (int64, error)
}

// Catalog serves product listings and admin product insertion.
type Catalog struct {
	reader ProductReader
	writer ProductWriter
}

// NewCatalog constructs the catalog service.
func NewCatalog(reader ProductReader, writer ProductWriter) *Catalog {
	return &Catalog{reader: reader, writer: writer}
}

// ListByCategory returns available products of a category. An empty slice is
// a valid result, not an error.
func (s *Catalog) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.reader.ListAvailable(ctx, category)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "service.catalog", "catalog.list",
		slog.String("category", category),
		slog.Int("items", len(products)),
	)
	return products, nil
}

// Product resolves one product or fails with ErrProductNotFound.
func (s *Catalog) Product(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.reader.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// AddProduct parses an admin-supplied JSON payload and stores the product.
// Invalid JSON, a missing title, an unknown category, or a negative price
// fail with ErrMalformedInput.
func (s *Catalog) AddProduct(ctx context.Context, payload string) (*models.Product, error) {
	var in struct {
		Title          models.LocalizedText `json:"title"`
		Description    models.LocalizedText `json:"description"`
		Price          int64                `json:"price"`
		Category       string               `json:"category"`
		Image          *string              `json:"image"`
		SpecialOptions models.StringList    `json:"specialOptions"`
		Available      *bool                `json:"available"`
	}
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		logger.Warn(ctx, "service.catalog", "catalog.add.reject",
			slog.String("err", logger.SanitizeLimit(err.Error(), 128)),
		)
		return nil, ErrMalformedInput
	}
	if len(in.Title) == 0 || in.Price < 0 || !validCategory(in.Category) {
		return nil, ErrMalformedInput
	}

	p := models.Product{
		Title:          in.Title,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		Image:          in.Image,
		SpecialOptions: in.SpecialOptions,
		// Products are listable unless the payload says otherwise.
		Available: in.Available == nil || *in.Available,
	}

	id, err := s.writer.Insert(ctx, &p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	logger.Info(ctx, "service.catalog", "catalog.add",
		slog.Int64("product_id", id),
		slog.String("category", p.Category),
	)
	return &p, nil
}
