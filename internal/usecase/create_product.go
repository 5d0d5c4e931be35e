package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// CreateProduct inserts a new catalog entry.
type CreateProduct struct {
	store  domain.ProductStore
	logger *slog.Logger
}

// NewCreateProduct creates a new CreateProduct usecase.
func NewCreateProduct(store domain.ProductStore, logger *slog.Logger) *CreateProduct {
	return &CreateProduct{store: store, logger: logger}
}

// Execute inserts the product and returns its assigned id.
func (uc *CreateProduct) Execute(ctx context.Context, fields domain.ProductFields) (string, error) {
	id, err := uc.store.Insert(ctx, fields)
	if err != nil {
		return "", err
	}
	uc.logger.InfoContext(ctx, "product created", "id", id, "name", fields.Name)
	return id, nil
}
