package domain

import "errors"

// Authentication and authorization errors.
var (
	ErrNoCredential      = errors.New("session cookie not found")
	ErrInvalidCredential = errors.New("invalid or expired session token")
	ErrForbidden         = errors.New("forbidden access")
)

// Token errors.
var (
	ErrTokenGeneration = errors.New("token generation failed")
)

// Request and storage errors.
var (
	ErrBadRequest     = errors.New("bad request")
	ErrStorageFailure = errors.New("storage failure")
)
