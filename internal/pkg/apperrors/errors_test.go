package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCustomErrorUnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"not found", NewNotFoundError("mentor not found"), ErrNotFound},
		{"forbidden", NewForbiddenError("not your request"), ErrForbidden},
		{"conflict", NewConflictError("request already pending"), ErrConflict},
		{"validation", NewValidationError("body", "message body is required"), ErrValidationFailed},
		{"wrapped", fmt.Errorf("decide: %w", NewCustomError(ErrInvalidTransition, "already decided")), ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.target)
			}
		})
	}
}

func TestIsMatchesAnyOfList(t *testing.T) {
	err := fmt.Errorf("send: %w", ErrNotAuthorized)
	if !Is(err, ErrForbidden, ErrNotFound, ErrNotAuthorized) {
		t.Errorf("Is() = false, want true")
	}
	if Is(err, ErrForbidden, ErrNotFound) {
		t.Errorf("Is() = true, want false")
	}
}

func TestMessageOf(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewCustomError(ErrNotConfigured, "goal not configured").WithStatusMsg("Set a career goal first"))
	got, ok := MessageOf(err)
	if !ok || got != "Set a career goal first" {
		t.Errorf("MessageOf() = %q, %v, want %q, true", got, ok, "Set a career goal first")
	}

	if _, ok := MessageOf(ErrNotFound); ok {
		t.Errorf("MessageOf(sentinel) ok = true, want false")
	}
}
