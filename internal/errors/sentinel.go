package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a parameter set or configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrAssertion indicates an expected string or pattern was absent from a
	// generated file.
	ErrAssertion = errors.New("assertion error")

	// ErrToolFailed indicates an external quality tool exited non-zero.
	ErrToolFailed = errors.New("tool failed")

	// ErrNotFound indicates a file, variant, or tool binary was not found.
	ErrNotFound = errors.New("not found")

	// ErrSkipped marks a check that does not apply to the parameter set.
	// It is an intentional no-op, never a failure.
	ErrSkipped = errors.New("check skipped")
)
