package utils

import "errors"

// Error kinds surfaced by repositories and services. Callers match with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrNotFound - operation references an id absent from the store
	ErrNotFound = errors.New("not found")

	// ErrValidation - input rejected before reaching the store
	ErrValidation = errors.New("validation failed")

	// ErrReferential - association references a non-existent row
	ErrReferential = errors.New("referential integrity violation")

	// ErrStorage - underlying connection or transaction failure
	ErrStorage = errors.New("storage failure")
)
