// Package apperror defines the domain errors shared by the service and handler layers.
//
// Services return *AppError values wrapping one of the sentinel errors below.
// Handlers translate them to HTTP with errors.Is / errors.As, so the service
// layer never has to know about status codes.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

type AppError struct {
	Err     error  // sentinel this error is classified as
	Message string // Human-readable error message, safe to show to clients
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing record. id is formatted with %v so both
// integer and string identifiers read naturally.
func NotFound(resource string, id any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %v", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}
