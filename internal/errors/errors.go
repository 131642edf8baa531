package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between backends.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure, such as a transform
// input whose length is not a power of two. It identifies which field failed
// validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// TransformError encapsulates a transform backend failure while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong inside a DFT/IDFT call.
type TransformError struct {
	// Backend is the name of the transform backend that failed.
	Backend string
	// Cause is the underlying error that triggered this transform error.
	Cause error
}

// Error returns a message identifying the failing backend and its cause.
//
// Returns:
//   - string: The error message string.
func (e TransformError) Error() string {
	return fmt.Sprintf("transform backend %q: %v", e.Backend, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the TransformError.
func (e TransformError) Unwrap() error { return e.Cause }

// PrecisionError reports that a coefficient produced by the inverse transform
// could not be rounded to an integer reliably: the residual between the
// pre-rounding real part and the rounded value exceeded the configured slack,
// meaning the floating-point precision ceiling was reached for this input.
type PrecisionError struct {
	// Index is the coefficient position at which rounding became unreliable.
	Index int
	// Value is the pre-rounding real part of the coefficient.
	Value float64
	// Rounded is the integer the value would have been rounded to.
	Rounded int64
	// Residual is |Value - Rounded|.
	Residual float64
}

// Error returns a formatted message describing the precision failure.
//
// Returns:
//   - string: The error message string.
func (e PrecisionError) Error() string {
	return fmt.Sprintf("precision exceeded at coefficient %d: value %g rounds to %d (residual %g)",
		e.Index, e.Value, e.Rounded, e.Residual)
}

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
