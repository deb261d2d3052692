// Package errors provides the structured error types shared by the termkit
// packages. Errors carry a category, a stable machine-readable code, and an
// optional cause; caller-supplied normalizer failures are wrapped but never
// reinterpreted, so errors.Is/As against the original error keeps working.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	// ErrorTypeConfig covers invalid or contradictory configuration
	// supplied at build time. Fatal: the caller must fix and rebuild.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeInput covers a split invoked with a non-textual input.
	ErrorTypeInput ErrorType = "input"
	// ErrorTypeNormalize wraps a failure from a caller-supplied
	// normalization function, propagated verbatim as the cause.
	ErrorTypeNormalize ErrorType = "normalize"
	// ErrorTypeInternal covers bugs in termkit itself.
	ErrorTypeInternal ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeEmptySeparators   = "ERR_EMPTY_SEPARATORS"
	ErrCodeMarkerConflict    = "ERR_MARKER_CONFLICT"
	ErrCodeQuoteConflict     = "ERR_QUOTE_CONFLICT"
	ErrCodeGroupingInvalid   = "ERR_GROUPING_INVALID"
	ErrCodeContainerInvalid  = "ERR_CONTAINER_INVALID"
	ErrCodeInputType         = "ERR_INPUT_TYPE"
	ErrCodeNormalizeFailed   = "ERR_NORMALIZE_FAILED"
	ErrCodeNormalizerUnknown = "ERR_NORMALIZER_UNKNOWN"
	ErrCodeProfileUnknown    = "ERR_PROFILE_UNKNOWN"
	ErrCodePatternCompile    = "ERR_PATTERN_COMPILE"
)

// TermkitError is a structured error with a category and stable code.
type TermkitError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *TermkitError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *TermkitError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type and code.
func (e *TermkitError) Is(target error) bool {
	var t *TermkitError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *TermkitError) WithContext(key string, value interface{}) *TermkitError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *TermkitError {
	return &TermkitError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInputError creates an input-type error.
func NewInputError(code, message string) *TermkitError {
	return &TermkitError{
		Type:    ErrorTypeInput,
		Code:    code,
		Message: message,
	}
}

// NewNormalizeError wraps a caller-supplied normalizer failure. The cause
// is preserved unchanged and reachable through Unwrap.
func NewNormalizeError(message string, cause error) *TermkitError {
	return &TermkitError{
		Type:    ErrorTypeNormalize,
		Code:    ErrCodeNormalizeFailed,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *TermkitError {
	return &TermkitError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError checks if an error is configuration-related.
func IsConfigError(err error) bool {
	var te *TermkitError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeConfig
	}

	return false
}

// IsInputError checks if an error is an input-type mismatch.
func IsInputError(err error) bool {
	var te *TermkitError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeInput
	}

	return false
}

// IsNormalizeError checks if an error wraps a normalizer failure.
func IsNormalizeError(err error) bool {
	var te *TermkitError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeNormalize
	}

	return false
}

// Helper constructors for the common configuration failures.

// ErrEmptySeparators reports a configuration with no separator characters.
func ErrEmptySeparators() *TermkitError {
	return NewConfigError(ErrCodeEmptySeparators, "separator set must not be empty")
}

// ErrMarkerConflict reports a marker that collides with another character class.
func ErrMarkerConflict(marker rune, class string) *TermkitError {
	return NewConfigError(
		ErrCodeMarkerConflict,
		fmt.Sprintf("marker %q is also configured as a %s", marker, class),
	)
}

// ErrInputType reports a split invoked with a non-textual value.
func ErrInputType(v interface{}) *TermkitError {
	return NewInputError(
		ErrCodeInputType,
		fmt.Sprintf("expected textual input, got %T", v),
	).WithContext("value", v)
}
