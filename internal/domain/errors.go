package domain

import "errors"

// Semantic outcomes surfaced by repositories. Services and handlers match on
// these instead of provider-specific error codes.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidStatus  = errors.New("status must be APPROVED or REJECTED")
)
