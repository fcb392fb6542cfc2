// Package caseerrors provides structured error types for casetools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors.
package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidInput indicates a conversion received a non-string value.
	ErrInvalidInput = errors.New("invalid input type")

	// ErrConfig indicates an invalid configuration or option value.
	ErrConfig = errors.New("configuration error")
)

// InputTypeError represents a contract violation where a conversion entry
// point was called with a value that is not a string. It is raised before
// any processing occurs; no partial work is performed.
type InputTypeError struct {
	// Value is the offending value as passed by the caller (may be nil)
	Value any
}

// NewInputTypeError creates an InputTypeError for the given value.
func NewInputTypeError(value any) *InputTypeError {
	return &InputTypeError{Value: value}
}

// Error returns a human-readable error message including the dynamic type
// of the offending value.
func (e *InputTypeError) Error() string {
	return fmt.Sprintf("invalid input type: expected string, got %T", e.Value)
}

// Is reports whether target matches this error type.
func (e *InputTypeError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigError represents an invalid configuration or option value passed to
// one of the layers above the core library (generator options, CLI flags,
// MCP tool input).
type ConfigError struct {
	// Option is the name of the offending option or flag
	Option string
	// Message describes why the value was rejected
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += ": " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
