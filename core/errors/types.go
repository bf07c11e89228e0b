// ABOUTME: Custom error types for the entry reader core
// ABOUTME: Structured errors for collaborator resolution, parsing and configuration

package errors

import (
	"errors"
	"fmt"
)

// CollaboratorResolutionError is returned when an extension name or dialect
// cannot be mapped to a constructible extension implementation
type CollaboratorResolutionError struct {
	Name    string
	Dialect string
	Reason  string
}

// Error implements the error interface
func (e *CollaboratorResolutionError) Error() string {
	if e.Dialect == "" {
		return fmt.Sprintf("cannot resolve extension %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("cannot resolve extension %q for dialect %q: %s", e.Name, e.Dialect, e.Reason)
}

// ParseError represents a failure to turn raw input into a document
type ParseError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsCollaboratorResolution checks if an error is a CollaboratorResolutionError
func IsCollaboratorResolution(err error) bool {
	var resolutionErr *CollaboratorResolutionError
	return errors.As(err, &resolutionErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
