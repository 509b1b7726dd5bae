package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/candylab/sweetbot/core/logger"
	"github.com/candylab/sweetbot/internal/models"
)

func strPtr(s string) *string { return &s }

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Title:          models.LocalizedText{"uz": "Shokoladli tort", "ru": "Шоколадный торт", "en": "Chocolate Cake"},
			Description:    models.LocalizedText{"uz": "Boy shokoladli tort", "ru": "Насыщенный шоколадный торт", "en": "Rich chocolate cake"},
			Price:          45,
			Category:       "cakes",
			Image:          strPtr("https://i.imgur.com/Khb6XgY.jpg"),
			SpecialOptions: models.StringList{"Ism yozish"},
			Available:      true,
		},
		{
			Title:       models.LocalizedText{"uz": "Pishiriq (tortlets)", "ru": "Печенье (пирожное)", "en": "Pastry (tartlet)"},
			Description: models.LocalizedText{"uz": "Yengil pishiriq", "ru": "Легкая выпечка", "en": "Light pastry"},
			Price:       3,
			Category:    "pastries",
			Image:       strPtr("https://i.imgur.com/1bX5QH6.jpg"),
			Available:   true,
		},
		{
			Title:       models.LocalizedText{"uz": "Karamel desert", "ru": "Десерт карамель", "en": "Caramel dessert"},
			Description: models.LocalizedText{"uz": "Mazali karamel", "ru": "Вкусная карамель", "en": "Tasty caramel"},
			Price:       5,
			Category:    "desserts",
			Image:       strPtr("https://i.imgur.com/3GvwNBf.jpg"),
			Available:   true,
		},
	}
}

// SeedProducts inserts the sample catalog on first run. A non-empty catalog
// leaves the table untouched.
func SeedProducts(db *sqlx.DB) error {
	ctx := context.Background()
	products := NewProducts(db)

	count, err := products.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		logger.SEED.Debug("catalog already seeded",
			slog.String("event", "seed.skip"),
			slog.Int("items", count),
		)
		return nil
	}

	sample := sampleProducts()
	for i := range sample {
		if _, err := products.Insert(ctx, &sample[i]); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	logger.SEED.Info("sample products added",
		slog.String("event", "seed.complete"),
		slog.Int("items", len(sample)),
	)
	return nil
}
