package usecase

import (
	"context"
	"log/slog"

	"motoshop/internal/domain"
)

// ListCart returns a user's cart items after an ownership check: the
// authenticated claim's email must equal the requested user key exactly.
type ListCart struct {
	store  domain.CartStore
	logger *slog.Logger
}

// NewListCart creates a new ListCart usecase.
func NewListCart(store domain.CartStore, logger *slog.Logger) *ListCart {
	return &ListCart{store: store, logger: logger}
}

// Execute authorizes and lists. Comparison is byte-for-byte; a claim without
// a usable email field never matches.
func (uc *ListCart) Execute(ctx context.Context, claims domain.Claims, requestedUser string) ([]domain.CartItem, error) {
	email, ok := claims.Email()
	if !ok || email != requestedUser {
		uc.logger.WarnContext(ctx, "cart access denied",
			"requested_user", requestedUser,
			"has_email_claim", ok)
		return nil, domain.ErrForbidden
	}
	return uc.store.ListByOwner(ctx, requestedUser)
}
