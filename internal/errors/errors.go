package apperrors

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// ConfigError represents a configuration error, such as an unknown algorithm
// name or an invalid tuning value. It indicates that a solve cannot proceed
// due to incorrect caller-supplied settings.
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
// It allows for the creation of configuration-specific errors with dynamic
// content.
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

// SolveError encapsulates a path-sum computation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during the solve.
type SolveError struct {
	// Cause is the underlying error that triggered this solve error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e SolveError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the SolveError.
func (e SolveError) Unwrap() error { return e.Cause }

// TimeoutError represents a solve timeout. It captures the operation
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

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
// A malformed triangle (empty, or a row whose width does not match its
// position) is always reported through this type before any computation runs.
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

// ResourceLimitError represents a capacity limit exceeded condition, such as
// a triangle taller than the configured recursion guard. It signals a
// controlled capacity refusal rather than a correctness bug: the mitigation
// is to raise the limit or switch to a solver with a smaller footprint.
type ResourceLimitError struct {
	// Resource names the limited resource (e.g. "rows", "recursion rows").
	Resource string
	// Requested is the amount the operation needed.
	Requested int
	// Limit is the configured maximum.
	Limit int
}

// Error returns a formatted message describing the exceeded limit.
//
// Returns:
//   - string: The error message string.
func (e ResourceLimitError) Error() string {
	return fmt.Sprintf("resource limit exceeded: %s requested %d (limit: %d)", e.Resource, e.Requested, e.Limit)
}

// MismatchError reports a disagreement between solvers run against the same
// triangle. Because every solver implements the same contract, any
// disagreement is a critical correctness failure in at least one of them.
type MismatchError struct {
	// Algorithm is the name of the solver whose result diverged.
	Algorithm string
	// Want is the reference result the other solvers agreed on.
	Want *big.Int
	// Got is the diverging result.
	Got *big.Int
}

// Error returns a formatted message describing the disagreement.
//
// Returns:
//   - string: The error message string.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch: %s returned %s, want %s", e.Algorithm, e.Got, e.Want)
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
