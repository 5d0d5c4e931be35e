package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"motoshop/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPageProducts_ForwardsPageAndSize(t *testing.T) {
	store := &mockProductStore{products: []domain.Product{{ID: "p1"}}}
	uc := NewPageProducts(store, slog.Default())

	products, err := uc.Execute(context.Background(), 2, 5)

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 2, store.lastPage)
	assert.Equal(t, 5, store.lastSize)
}

func TestPageProducts_NegativeParamsRejected(t *testing.T) {
	store := &mockProductStore{}
	uc := NewPageProducts(store, slog.Default())

	_, err := uc.Execute(context.Background(), -1, 5)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))

	_, err = uc.Execute(context.Background(), 0, -5)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))

	assert.False(t, store.called)
}

func TestPageProducts_ZeroSizeAllowed(t *testing.T) {
	store := &mockProductStore{products: []domain.Product{}}
	uc := NewPageProducts(store, slog.Default())

	products, err := uc.Execute(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProducts_BrandFilter(t *testing.T) {
	store := &mockProductStore{products: []domain.Product{{ID: "p1", Brand: "Fox"}}}
	uc := NewListProducts(store, slog.Default())

	products, err := uc.Execute(context.Background(), "Fox")

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Fox", store.lastBrand)
}
