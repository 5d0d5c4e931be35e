package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// GetProduct fetches one product by id.
type GetProduct struct {
	store  domain.ProductStore
	logger *slog.Logger
}

// NewGetProduct creates a new GetProduct usecase.
func NewGetProduct(store domain.ProductStore, logger *slog.Logger) *GetProduct {
	return &GetProduct{store: store, logger: logger}
}

// Execute returns the product, or nil when the id is unknown.
func (uc *GetProduct) Execute(ctx context.Context, id string) (*domain.Product, error) {
	return uc.store.Get(ctx, id)
}
