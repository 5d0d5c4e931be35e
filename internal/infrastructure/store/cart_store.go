package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"motoshop/internal/domain"

	"github.com/google/uuid"
)

// ListByOwner returns the cart items belonging to the given user key.
func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]domain.CartItem, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, current_user_key, product FROM cart_items WHERE current_user_key = $1 ORDER BY created_at, id`,
		owner)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list cart items", "error", err, "owner", owner)
		return nil, fmt.Errorf("%w: list cart items", domain.ErrStorageFailure)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CurrentUser, &item.Product); err != nil {
			return nil, fmt.Errorf("%w: scan cart item", domain.ErrStorageFailure)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read cart items", domain.ErrStorageFailure)
	}
	return items, nil
}

// Insert creates a cart item for the given owner with an opaque product payload.
func (r *Repository) Insert(ctx context.Context, owner string, product json.RawMessage) (string, error) {
	if r.pool == nil {
		return "", errNoPool
	}

	id := uuid.New().String()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cart_items (id, current_user_key, product) VALUES ($1, $2, $3)`,
		id, owner, product)
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert cart item", "error", err, "owner", owner)
		return "", fmt.Errorf("%w: insert cart item", domain.ErrStorageFailure)
	}
	return id, nil
}

// Delete removes a cart item by id and reports how many rows were removed.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	if r.pool == nil {
		return 0, errNoPool
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete cart item", "error", err, "id", id)
		return 0, fmt.Errorf("%w: delete cart item", domain.ErrStorageFailure)
	}
	return tag.RowsAffected(), nil
}
