package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// UpsertProduct replaces the six writable product fields by id, creating the
// record when the id does not exist.
type UpsertProduct struct {
	store  domain.ProductStore
	logger *slog.Logger
}

// NewUpsertProduct creates a new UpsertProduct usecase.
func NewUpsertProduct(store domain.ProductStore, logger *slog.Logger) *UpsertProduct {
	return &UpsertProduct{store: store, logger: logger}
}

// Execute performs the upsert.
func (uc *UpsertProduct) Execute(ctx context.Context, id string, fields domain.ProductFields) (*domain.UpsertResult, error) {
	result, err := uc.store.Upsert(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if result.UpsertedID != nil {
		uc.logger.InfoContext(ctx, "product created via upsert", "id", id)
	}
	return result, nil
}
