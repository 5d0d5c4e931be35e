package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// RemoveCartItem deletes a cart item by id.
type RemoveCartItem struct {
	store  domain.CartStore
	logger *slog.Logger
}

// NewRemoveCartItem creates a new RemoveCartItem usecase.
func NewRemoveCartItem(store domain.CartStore, logger *slog.Logger) *RemoveCartItem {
	return &RemoveCartItem{store: store, logger: logger}
}

// Execute deletes the item and reports how many records were removed.
// Deleting an unknown id is not an error.
func (uc *RemoveCartItem) Execute(ctx context.Context, id string) (int64, error) {
	return uc.store.Delete(ctx, id)
}
