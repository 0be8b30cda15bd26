package shared

import "errors"

var (
	// ErrNotFound indicates the referenced entity or record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates malformed or out-of-range input.
	ErrValidation = errors.New("invalid input")
	// ErrDisabled occurs when an operation targets a disabled item or customer.
	ErrDisabled = errors.New("entity disabled")
	// ErrReferenced blocks hard deletion while live ledger records still
	// reference the entity.
	ErrReferenced = errors.New("referenced by ledger records")
)
