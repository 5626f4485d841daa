package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input, such as an
	// unknown season slug or query kind.
	ErrInvalidInput = errors.New("invalid input")
)
