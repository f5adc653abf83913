package store

import "errors"

// Sentinel errors for store construction.
var (
	ErrNoName     = errors.New("store name is required")
	ErrNilReducer = errors.New("reducer is required")
)
