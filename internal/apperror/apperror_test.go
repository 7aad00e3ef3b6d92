package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       NotFound("project", 7),
			target:    ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("email", "Invalid email format"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "NotFound does NOT match ErrValidation",
			err:       NotFound("project", 7),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "wrapped ValidationFailed still matches",
			err:       fmt.Errorf("submitting contact: %w", ValidationFailed("name", "All fields are required")),
			target:    ErrValidation,
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{
			name:        "NotFound with integer id",
			err:         NotFound("project", 42),
			wantMessage: "project not found with id 42",
		},
		{
			name:        "NotFound with string id",
			err:         NotFound("user", "jo"),
			wantMessage: "user not found with id jo",
		},
		{
			name:        "ValidationFailed uses custom message",
			err:         ValidationFailed("name", "All fields are required"),
			wantMessage: "All fields are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestErrorsAsExtractsField(t *testing.T) {
	err := fmt.Errorf("outer: %w", ValidationFailed("email", "Invalid email format"))

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As() did not find *AppError in chain")
	}
	if appErr.Field != "email" {
		t.Errorf("Field = %q, want %q", appErr.Field, "email")
	}
}
