// ABOUTME: Error types and handling for the Digests reader library
// ABOUTME: Provides structured errors with context for load operations

package digests

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid input to the library
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeParsing indicates the document could not be parsed
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeUnsupported indicates a well-formed feed of a type the reader does not handle
	ErrorTypeUnsupported ErrorType = "unsupported"

	// ErrorTypeResolution indicates an extension could not be resolved for an entry
	ErrorTypeResolution ErrorType = "resolution"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errType
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return isType(err, ErrorTypeParsing)
}

// IsUnsupportedError checks if an error reports an unsupported feed type
func IsUnsupportedError(err error) bool {
	return isType(err, ErrorTypeUnsupported)
}

// IsResolutionError checks if an error is an extension resolution error
func IsResolutionError(err error) bool {
	return isType(err, ErrorTypeResolution)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
