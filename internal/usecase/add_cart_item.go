package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"motoshop/internal/domain"
)

// AddCartItem inserts a cart item for a user.
type AddCartItem struct {
	store  domain.CartStore
	logger *slog.Logger
}

// NewAddCartItem creates a new AddCartItem usecase.
func NewAddCartItem(store domain.CartStore, logger *slog.Logger) *AddCartItem {
	return &AddCartItem{store: store, logger: logger}
}

// Execute stores the item and returns its assigned id.
func (uc *AddCartItem) Execute(ctx context.Context, owner string, product json.RawMessage) (string, error) {
	id, err := uc.store.Insert(ctx, owner, product)
	if err != nil {
		return "", err
	}
	uc.logger.InfoContext(ctx, "cart item added", "id", id, "owner", owner)
	return id, nil
}
