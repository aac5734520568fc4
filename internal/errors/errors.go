package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for common failure conditions
var (
	// ErrInvalidInput indicates invalid user input or configuration
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// ValidationError represents an input validation failure
type ValidationError struct {
	Field   string // Field that failed validation
	Value   string // Invalid value
	Message string // Human-readable message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s (value: %q)", e.Field, e.Message, e.Value)
}

// Is implements error comparison for errors.Is
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// TimeoutError reports that a command exceeded its configured deadline.
type TimeoutError struct {
	Op      string        // Operation that timed out
	Timeout time.Duration // Configured deadline
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s seconds", e.Op, FormatSeconds(e.Timeout))
}

// Is implements error comparison for errors.Is
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(op string, timeout time.Duration) *TimeoutError {
	return &TimeoutError{Op: op, Timeout: timeout}
}

// FormatSeconds renders d as a plain number of seconds ("5", "0.5").
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// MultiError aggregates multiple errors
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns the MultiError if it has errors, otherwise nil
func (e *MultiError) ErrorOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewMultiError creates a new multi-error from a slice of errors
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}
