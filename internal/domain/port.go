package domain

import (
	"context"
	"encoding/json"
)

// TokenIssuer mints a signed session token from an identity claim.
type TokenIssuer interface {
	Issue(claims Claims) (string, error)
}

// TokenVerifier checks a session token's signature and expiry and returns
// the embedded identity claim.
type TokenVerifier interface {
	Verify(token string) (Claims, error)
}

// ProductStore provides access to the product collection.
type ProductStore interface {
	List(ctx context.Context, brand string) ([]Product, error)
	ListPage(ctx context.Context, page, size int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id string) (*Product, error)
	Upsert(ctx context.Context, id string, fields ProductFields) (*UpsertResult, error)
	Insert(ctx context.Context, fields ProductFields) (string, error)
}

// CartStore provides access to the cart collection.
type CartStore interface {
	ListByOwner(ctx context.Context, owner string) ([]CartItem, error)
	Insert(ctx context.Context, owner string, product json.RawMessage) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
}
