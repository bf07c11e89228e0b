package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCollaboratorResolutionError_Error(t *testing.T) {
	err := &CollaboratorResolutionError{
		Name:    "Atom_Entry",
		Dialect: "rss-20",
		Reason:  "dialect not supported",
	}

	expected := `cannot resolve extension "Atom_Entry" for dialect "rss-20": dialect not supported`
	if err.Error() != expected {
		t.Errorf("CollaboratorResolutionError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestCollaboratorResolutionError_ErrorWithoutDialect(t *testing.T) {
	err := &CollaboratorResolutionError{
		Name:   "Slash_Entry",
		Reason: "not registered",
	}

	expected := `cannot resolve extension "Slash_Entry": not registered`
	if err.Error() != expected {
		t.Errorf("CollaboratorResolutionError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestParseError_Error(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ParseError{Stage: "xml", Err: cause}

	expected := "parse error during xml: unexpected EOF"
	if err.Error() != expected {
		t.Errorf("ParseError.Error() = %v, want %v", err.Error(), expected)
	}

	if !errors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "READER_LOG_LEVEL",
		Message: "unknown level",
	}

	expected := "validation error on field 'READER_LOG_LEVEL': unknown level"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsCollaboratorResolution(t *testing.T) {
	err := &CollaboratorResolutionError{Name: "Thread_Entry", Reason: "not registered"}

	if !IsCollaboratorResolution(err) {
		t.Error("IsCollaboratorResolution should return true for CollaboratorResolutionError")
	}

	wrapped := fmt.Errorf("constructing entry: %w", err)
	if !IsCollaboratorResolution(wrapped) {
		t.Error("IsCollaboratorResolution should return true for wrapped CollaboratorResolutionError")
	}

	if IsCollaboratorResolution(errors.New("some other error")) {
		t.Error("IsCollaboratorResolution should return false for other errors")
	}
}

func TestIsParse(t *testing.T) {
	if !IsParse(WrapError(&ParseError{Stage: "detect", Err: errors.New("x")}, "load")) {
		t.Error("IsParse should return true for wrapped ParseError")
	}

	if IsParse(&ValidationError{}) {
		t.Error("IsParse should return false for ValidationError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "f", Message: "m"}) {
		t.Error("IsValidation should return true for ValidationError")
	}

	if IsValidation(nil) {
		t.Error("IsValidation should return false for nil")
	}
}

func TestWrapError(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := WrapError(originalErr, "additional context")

	expected := "additional context: original error"
	if wrappedErr.Error() != expected {
		t.Errorf("WrapError() = %v, want %v", wrappedErr.Error(), expected)
	}

	if !errors.Is(wrappedErr, originalErr) {
		t.Error("Wrapped error should contain original error")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
