// Package caseerrors provides structured error types for the casetools library.
//
// Import path: github.com/erraggy/casetools/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
// The package provides two core error types:
//
//   - [InputTypeError]: A conversion entry point received a non-string value
//   - [ConfigError]: Invalid configuration or options passed to an outer layer
//     (generator options, CLI flags, MCP tool input)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidInput]: Matches any [InputTypeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	out, err := caser.ToKebabCase(123)
//	if errors.Is(err, caseerrors.ErrInvalidInput) {
//	    // Programming-contract violation: caller passed a non-string
//	}
//
// Extract error details with errors.As():
//
//	var typeErr *caseerrors.InputTypeError
//	if errors.As(err, &typeErr) {
//	    fmt.Printf("got %T, expected string\n", typeErr.Value)
//	}
//
// InputTypeError is deterministic: a repeated call with the same invalid
// input always fails identically, before any processing occurs. Callers
// should treat it as a contract violation, not a transient fault.
package caseerrors
