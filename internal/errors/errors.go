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
	ExitSuccess         = 0   // Indicates the wizard reached a terminal step.
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorTimeout    = 2   // Indicates the wizard run exceeded its time limit.
	ExitErrorIncomplete = 3   // Indicates the wizard was left before a terminal step.
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorScript     = 5   // Indicates an invalid or unreplayable answers file.
	ExitErrorCanceled   = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ErrIncomplete reports a wizard run that ended before a terminal step was
// completed, either because the user quit or the answers ran out.
var ErrIncomplete = errors.New("onboarding ended before a terminal step")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// StepError reports an event delivered to the controller while a different
// step is active, or carrying a value the active step does not accept.
// Views only ever emit events for their own step, so this signals misuse
// by the caller rather than bad user input.
type StepError struct {
	// Current is the step the controller was on.
	Current string
	// Event names the step the event was addressed to.
	Event string
	// Reason optionally narrows down what was wrong with the event.
	Reason string
}

// Error returns a formatted message describing the misuse.
func (e StepError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("step %q: %s", e.Current, e.Reason)
	}
	return fmt.Sprintf("event for step %q delivered while on step %q", e.Event, e.Current)
}

// ScriptError wraps a failure that occurred while replaying entry Index of
// an answers file.
type ScriptError struct {
	// Index is the zero-based position of the failing entry.
	Index int
	// Cause is the underlying error.
	Cause error
}

// Error returns the cause prefixed with the entry position.
func (e ScriptError) Error() string {
	return fmt.Sprintf("answers entry %d: %v", e.Index, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e ScriptError) Unwrap() error { return e.Cause }

// TimeoutError represents a wizard run that was not finished within the
// configured limit.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by the application layers to the exit
// status reported to the OS. A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		scriptErr     ScriptError
		timeoutErr    TimeoutError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, ErrIncomplete):
		return ExitErrorIncomplete
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &validationErr), errors.As(err, &scriptErr):
		return ExitErrorScript
	default:
		return ExitErrorGeneric
	}
}
