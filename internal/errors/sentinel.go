package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an invalid manifest, option value or argument.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, option or file was not found.
	ErrNotFound = errors.New("not found")
)
