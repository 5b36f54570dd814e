package store

import "errors"

// Domain error kinds. Handlers translate these to HTTP status codes;
// nothing below the handler layer knows about transports.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidValue    = errors.New("invalid value")
	ErrInvalidEnum     = errors.New("invalid status")
	ErrInactiveProduct = errors.New("product is not active")
	ErrAlreadyClosed   = errors.New("order is already closed")
)
