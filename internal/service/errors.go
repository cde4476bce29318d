package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two domain error kinds the service surfaces.
// Use errors.Is against these to classify a service failure.
var (
	// ErrValidation marks failures caused by bad input: a malformed field,
	// a due date that is not in the future, or a reference to a nonexistent
	// user.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks operations that target an ID absent from the store.
	ErrNotFound = errors.New("not found")
)

// ValidationError is returned when a request fails a business rule.
// The message is human-readable and safe to return to clients.
type ValidationError struct {
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError with the given message.
// The error matches errors.Is(err, ErrValidation).
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
		Err:     ErrValidation,
	}
}

// NotFoundError is returned when an operation targets an entity that does
// not exist. The message is safe to return to clients.
type NotFoundError struct {
	Message string
	Err     error
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a NotFoundError with the given message.
// The error matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		Message: message,
		Err:     ErrNotFound,
	}
}
