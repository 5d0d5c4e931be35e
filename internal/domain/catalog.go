package domain

import "encoding/json"

// Product is a catalog entry with a system-assigned identifier.
type Product struct {
	ID     string  `json:"id"`
	Photo  string  `json:"photo"`
	Name   string  `json:"name"`
	Brand  string  `json:"brand"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}

// ProductFields are the writable fields of a product, used for both insert
// and upsert. Anything else in the request body is dropped.
type ProductFields struct {
	Photo  string  `json:"photo"`
	Name   string  `json:"name"`
	Brand  string  `json:"brand"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}

// UpsertResult reports the outcome of an update-or-insert operation.
type UpsertResult struct {
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// CartItem is a cart record owned by exactly one user. The product payload
// is stored opaquely; items are created and deleted, never updated.
type CartItem struct {
	ID          string          `json:"id"`
	CurrentUser string          `json:"currentUser"`
	Product     json.RawMessage `json:"product"`
}
