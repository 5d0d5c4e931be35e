package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"motoshop/internal/domain"
)

// PageProducts returns one slice of the ordered catalog listing.
type PageProducts struct {
	store  domain.ProductStore
	logger *slog.Logger
}

// NewPageProducts creates a new PageProducts usecase.
func NewPageProducts(store domain.ProductStore, logger *slog.Logger) *PageProducts {
	return &PageProducts{store: store, logger: logger}
}

// Execute returns page `page` of size `size` (0-indexed, skip = page*size).
// A page past the end of the collection is an empty result, not an error.
func (uc *PageProducts) Execute(ctx context.Context, page, size int) ([]domain.Product, error) {
	if page < 0 || size < 0 {
		return nil, fmt.Errorf("%w: page and size must be non-negative", domain.ErrBadRequest)
	}
	return uc.store.ListPage(ctx, page, size)
}
