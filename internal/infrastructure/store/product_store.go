package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"motoshop/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errNoPool = errors.New("database connection not available")

const productColumns = `id, photo, name, brand, type, price, rating`

// List returns all products, optionally filtered by exact brand.
func (r *Repository) List(ctx context.Context, brand string) ([]domain.Product, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	args := []any{}
	if brand != "" {
		query = `SELECT ` + productColumns + ` FROM products WHERE brand = $1 ORDER BY created_at, id`
		args = append(args, brand)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list products", "error", err, "brand", brand)
		return nil, fmt.Errorf("%w: list products", domain.ErrStorageFailure)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListPage returns one page of the full ordered listing. Pages past the end
// of the collection yield an empty slice, not an error.
func (r *Repository) ListPage(ctx context.Context, page, size int) ([]domain.Product, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, query, page*size, size)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list product page", "error", err, "page", page, "size", size)
		return nil, fmt.Errorf("%w: list product page", domain.ErrStorageFailure)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Count returns the total number of products.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if r.pool == nil {
		return 0, errNoPool
	}

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count products", "error", err)
		return 0, fmt.Errorf("%w: count products", domain.ErrStorageFailure)
	}
	return count, nil
}

// Get returns one product by id, or nil when absent.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Product, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	var p domain.Product
	err := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Photo, &p.Name, &p.Brand, &p.Type, &p.Price, &p.Rating)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to get product", "error", err, "id", id)
		return nil, fmt.Errorf("%w: get product", domain.ErrStorageFailure)
	}
	return &p, nil
}

// Upsert replaces the writable fields of the product with the given id, or
// creates the record when the id is unknown.
func (r *Repository) Upsert(ctx context.Context, id string, fields domain.ProductFields) (*domain.UpsertResult, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET photo = $2, name = $3, brand = $4, type = $5, price = $6, rating = $7 WHERE id = $1`,
		id, fields.Photo, fields.Name, fields.Brand, fields.Type, fields.Price, fields.Rating)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update product", "error", err, "id", id)
		return nil, fmt.Errorf("%w: upsert product", domain.ErrStorageFailure)
	}

	if tag.RowsAffected() > 0 {
		return &domain.UpsertResult{
			MatchedCount:  tag.RowsAffected(),
			ModifiedCount: tag.RowsAffected(),
		}, nil
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO products (id, photo, name, brand, type, price, rating) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, fields.Photo, fields.Name, fields.Brand, fields.Type, fields.Price, fields.Rating)
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert product on upsert", "error", err, "id", id)
		return nil, fmt.Errorf("%w: upsert product", domain.ErrStorageFailure)
	}

	upsertedID := id
	return &domain.UpsertResult{UpsertedID: &upsertedID}, nil
}

// Insert creates a new product with a system-assigned id.
func (r *Repository) Insert(ctx context.Context, fields domain.ProductFields) (string, error) {
	if r.pool == nil {
		return "", errNoPool
	}

	id := uuid.New().String()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (id, photo, name, brand, type, price, rating) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, fields.Photo, fields.Name, fields.Brand, fields.Type, fields.Price, fields.Rating)
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert product", "error", err)
		return "", fmt.Errorf("%w: insert product", domain.ErrStorageFailure)
	}
	return id, nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Photo, &p.Name, &p.Brand, &p.Type, &p.Price, &p.Rating); err != nil {
			return nil, fmt.Errorf("%w: scan product", domain.ErrStorageFailure)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read products", domain.ErrStorageFailure)
	}
	return products, nil
}
