package usecase

import (
	"context"
	"encoding/json"

	"motoshop/internal/domain"
)

// mockIssuer implements domain.TokenIssuer for testing.
type mockIssuer struct {
	token  string
	err    error
	called bool
	claims domain.Claims
}

func (m *mockIssuer) Issue(claims domain.Claims) (string, error) {
	m.called = true
	m.claims = claims
	return m.token, m.err
}

// mockProductStore implements domain.ProductStore for testing.
type mockProductStore struct {
	products  []domain.Product
	count     int64
	product   *domain.Product
	upsert    *domain.UpsertResult
	insertID  string
	err       error
	lastBrand string
	lastPage  int
	lastSize  int
	called    bool
}

func (m *mockProductStore) List(_ context.Context, brand string) ([]domain.Product, error) {
	m.called = true
	m.lastBrand = brand
	return m.products, m.err
}

func (m *mockProductStore) ListPage(_ context.Context, page, size int) ([]domain.Product, error) {
	m.called = true
	m.lastPage, m.lastSize = page, size
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

// mockCartStore implements domain.CartStore for testing.
type mockCartStore struct {
	items     []domain.CartItem
	insertID  string
	deleted   int64
	err       error
	called    bool
	lastOwner string
}

func (m *mockCartStore) ListByOwner(_ context.Context, owner string) ([]domain.CartItem, error) {
	m.called = true
	m.lastOwner = owner
	return m.items, m.err
}

func (m *mockCartStore) Insert(_ context.Context, owner string, _ json.RawMessage) (string, error) {
	m.called = true
	m.lastOwner = owner
	return m.insertID, m.err
}

func (m *mockCartStore) Delete(_ context.Context, _ string) (int64, error) {
	m.called = true
	return m.deleted, m.err
}
