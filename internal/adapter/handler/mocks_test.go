package handler

import (
	"context"
	"encoding/json"

	"motoshop/internal/domain"
)

// mockProductStore implements domain.ProductStore for testing.
type mockProductStore struct {
	products []domain.Product
	count    int64
	product  *domain.Product
	upsert   *domain.UpsertResult
	insertID string
	err      error
}

func (m *mockProductStore) List(_ context.Context, _ string) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductStore) ListPage(_ context.Context, _, _ int) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductStore) Count(_ context.Context) (int64, error) {
	return m.count, m.err
}

func (m *mockProductStore) Get(_ context.Context, _ string) (*domain.Product, error) {
	return m.product, m.err
}

func (m *mockProductStore) Upsert(_ context.Context, _ string, _ domain.ProductFields) (*domain.UpsertResult, error) {
	return m.upsert, m.err
}

func (m *mockProductStore) Insert(_ context.Context, _ domain.ProductFields) (string, error) {
	return m.insertID, m.err
}

// mockCartStore implements domain.CartStore for testing. ListByOwner filters
// the fixture by owner so ownership behavior is observable end to end.
type mockCartStore struct {
	items    []domain.CartItem
	insertID string
	deleted  int64
	err      error
}

func (m *mockCartStore) ListByOwner(_ context.Context, owner string) ([]domain.CartItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	owned := []domain.CartItem{}
	for _, item := range m.items {
		if item.CurrentUser == owner {
			owned = append(owned, item)
		}
	}
	return owned, nil
}

func (m *mockCartStore) Insert(_ context.Context, _ string, _ json.RawMessage) (string, error) {
	return m.insertID, m.err
}

func (m *mockCartStore) Delete(_ context.Context, _ string) (int64, error) {
	return m.deleted, m.err
}
