package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// ListProducts returns the full catalog, optionally filtered by exact brand.
type ListProducts struct {
	store  domain.ProductStore
	logger *slog.Logger
}

// NewListProducts creates a new ListProducts usecase.
func NewListProducts(store domain.ProductStore, logger *slog.Logger) *ListProducts {
	return &ListProducts{store: store, logger: logger}
}

// Execute lists products. An empty brand means no filter.
func (uc *ListProducts) Execute(ctx context.Context, brand string) ([]domain.Product, error) {
	return uc.store.List(ctx, brand)
}
