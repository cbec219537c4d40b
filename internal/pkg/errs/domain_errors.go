package errs

import "errors"

// Error markers shared by the usecase layers
var (
	// Upstream errors
	ErrUpstreamFailure = errors.New("upstream call failed")

	// Remote resource does not exist
	ErrNotFound = errors.New("not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Invariant violations
	ErrInvariant = errors.New("internal invariant violated")
)
