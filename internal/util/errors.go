package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types for the Blox CLI
var (
	// ErrInvalidConfig indicates a configuration error
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoAccounts indicates no account has been added yet
	ErrNoAccounts = errors.New("no accounts configured")

	// ErrAccountNotFound indicates the requested account is not configured
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists indicates an account with the same name is already configured
	ErrAccountExists = errors.New("account already exists")

	// ErrNotFound indicates the API has no such user, asset, group or game
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates the session cookie was rejected
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPrivateInventory indicates the user hides their inventory
	ErrPrivateInventory = errors.New("inventory is private")

	// ErrRateLimited indicates the API answered with HTTP 429
	ErrRateLimited = errors.New("rate limited")

	// ErrTooLarge indicates content exceeded a size limit
	ErrTooLarge = errors.New("content too large")

	// ErrUnknownFileType indicates downloaded content matched no known signature
	ErrUnknownFileType = errors.New("unknown file type")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCancelled indicates an operation was cancelled
	ErrCancelled = errors.New("operation cancelled")
)

// AccountError wraps an error with the name of the account it happened on
type AccountError struct {
	Account string
	Err     error
}

// Error implements the error interface
func (e *AccountError) Error() string {
	return fmt.Sprintf("account %q: %v", e.Account, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As compatibility
func (e *AccountError) Unwrap() error {
	return e.Err
}

// WrapAccountError wraps an error with account context
func WrapAccountError(account string, err error) error {
	if err == nil {
		return nil
	}
	return &AccountError{
		Account: account,
		Err:     err,
	}
}

// MultiError aggregates multiple errors
type MultiError struct {
	Errors []error
}

// Error implements the error interface
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:", len(m.Errors)))
	for i, err := range m.Errors {
		if i < 10 { // Limit to first 10 errors in the message
			sb.WriteString(fmt.Sprintf("\n  %d. %v", i+1, err))
		} else if i == 10 {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more errors", len(m.Errors)-10))
			break
		}
	}
	return sb.String()
}

// Unwrap returns the errors for errors.Is/As compatibility
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Add adds an error to the multi-error
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// ErrorOrNil returns nil if no errors were added, otherwise returns the MultiError
func (m *MultiError) ErrorOrNil() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

// NewMultiError creates a new MultiError from a slice of errors
// It filters out nil errors
func NewMultiError(errors []error) *MultiError {
	m := &MultiError{
		Errors: make([]error, 0, len(errors)),
	}
	for _, err := range errors {
		if err != nil {
			m.Errors = append(m.Errors, err)
		}
	}
	return m
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if v.Value != nil {
		return fmt.Sprintf("validation failed for field %q (value: %v): %s", v.Field, v.Value, v.Message)
	}
	return fmt.Sprintf("validation failed for field %q: %s", v.Field, v.Message)
}

// Unwrap ties every validation failure to ErrInvalidConfig
func (v *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// RetryableError wraps an error to indicate it should be retried
type RetryableError struct {
	Err        error
	RetryAfter int // seconds
}

// Error implements the error interface
func (r *RetryableError) Error() string {
	if r.RetryAfter > 0 {
		return fmt.Sprintf("retryable error (retry after %ds): %v", r.RetryAfter, r.Err)
	}
	return fmt.Sprintf("retryable error: %v", r.Err)
}

// Unwrap returns the wrapped error
func (r *RetryableError) Unwrap() error {
	return r.Err
}

// NewRetryableError creates a new retryable error
func NewRetryableError(err error, retryAfter int) *RetryableError {
	return &RetryableError{
		Err:        err,
		RetryAfter: retryAfter,
	}
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCancelled checks if an error is a cancellation error
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrAccountNotFound)
}

// IsUnauthorized checks if the session was rejected
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// FriendlyError converts technical errors to user-friendly messages
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case IsTimeout(err):
		return "Operation timed out. Please try again or increase the timeout value with --timeout flag."
	case IsCancelled(err):
		return "Operation was cancelled."
	case errors.Is(err, ErrNoAccounts):
		return "No accounts configured. Add one with 'blox add account NAME COOKIE'."
	case errors.Is(err, ErrAccountNotFound):
		return "Account not found. Run 'blox status --all' to see configured accounts."
	case errors.Is(err, ErrAccountExists):
		return "Account already exists. Choose a different name."
	case IsUnauthorized(err):
		return "The session was rejected. The .ROBLOSECURITY cookie may have expired; add the account again."
	case errors.Is(err, ErrPrivateInventory):
		return "This user's inventory is private."
	case errors.Is(err, ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case IsNotFound(err):
		return "Not found. Please check the identifier."
	case errors.Is(err, ErrUnknownFileType):
		return "The downloaded content has an unknown file type; nothing was written."
	case errors.Is(err, ErrInvalidConfig):
		return "Invalid configuration. Please check your config file and command-line flags."
	default:
		return err.Error()
	}
}

// CombineErrors combines multiple errors into a single error
// Returns nil if all errors are nil
func CombineErrors(errors ...error) error {
	m := NewMultiError(errors)
	return m.ErrorOrNil()
}

// WrapErrorf wraps an error with a formatted message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
