package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrInternalServer, cause)

	if !errors.Is(err, cause) {
		t.Error("expected the cause to be reachable through Unwrap")
	}
	if !errors.Is(err, ErrInternalServer) {
		t.Error("expected wrapped error to match its sentinel")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("did not expect a match against a different sentinel")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "meses must be an integer")

	if err.Message != "meses must be an integer" || err.StatusCode != ErrInvalidInput.StatusCode {
		t.Errorf("unexpected error %+v", err)
	}
	if !errors.Is(fmt.Errorf("binding: %w", err), ErrInvalidInput) {
		t.Error("expected match through an fmt wrapper")
	}

	var appErr *AppError
	if !errors.As(fmt.Errorf("binding: %w", err), &appErr) || appErr.Code != "INVALID_INPUT" {
		t.Error("expected errors.As to find the AppError")
	}
}
