package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing record and a record owned by another
	// user. The two cases must stay indistinguishable to the caller.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a duplicate unique key (e.g. email already registered).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials is returned for unknown emails and wrong passwords
	// alike, so sign-in failures never reveal which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a single malformed or missing input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a field-level validation error.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
