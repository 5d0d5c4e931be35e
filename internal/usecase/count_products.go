package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// CountProducts returns the total size of the catalog.
type CountProducts struct {
	store  domain.ProductStore
	logger *slog.Logger
}

// NewCountProducts creates a new CountProducts usecase.
func NewCountProducts(store domain.ProductStore, logger *slog.Logger) *CountProducts {
	return &CountProducts{store: store, logger: logger}
}

// Execute counts all products.
func (uc *CountProducts) Execute(ctx context.Context) (int64, error) {
	return uc.store.Count(ctx)
}
