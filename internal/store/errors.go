package store

import "errors"

var (
	// ErrStoreUnavailable is returned by write paths when the backing store was never
	// initialized. Read paths degrade to empty results instead.
	ErrStoreUnavailable = errors.New("store: backing store not initialized")

	// ErrNotFound is returned when a single-document lookup matches nothing.
	ErrNotFound = errors.New("store: document not found")
)
