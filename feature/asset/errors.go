package asset

import "errors"

var (
	// ErrInvalidID is returned when an identifier is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid asset id")
	// ErrNotFound is returned when no asset matches the identifier.
	ErrNotFound = errors.New("asset not found")
	// ErrEmptyUpdate is returned when an update carries no fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrStoreUnavailable wraps any failure talking to the document store.
	ErrStoreUnavailable = errors.New("asset store unavailable")
)
