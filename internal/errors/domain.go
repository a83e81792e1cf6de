package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel for the invalid-argument error class.
// Every validation failure raised by the domain wraps it, so callers can
// classify with errors.Is without matching individual codes.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is the sentinel for lookup misses surfaced as errors.
var ErrNotFound = errors.New("not found")

// DomainError is a classified domain failure carrying a standardized code
// alongside its human-readable message.
type DomainError struct {
	Code    ErrorCode
	Message string
	Details []string
	class   error
}

// ErrorOption is a functional option for configuring domain errors
type ErrorOption func(*DomainError)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(de *DomainError) {
		de.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(de *DomainError) {
		de.Message = message
	}
}

// NewInvalidArgument creates an invalid-argument domain error for the given code.
// The default message for the code is used unless overridden via options.
func NewInvalidArgument(code ErrorCode, opts ...ErrorOption) *DomainError {
	de := &DomainError{
		Code:    code,
		Message: GetErrorMessage(code),
		class:   ErrInvalidArgument,
	}

	for _, opt := range opts {
		opt(de)
	}

	return de
}

// NewNotFound creates a not-found domain error for the given code
func NewNotFound(code ErrorCode, opts ...ErrorOption) *DomainError {
	de := &DomainError{
		Code:    code,
		Message: GetErrorMessage(code),
		class:   ErrNotFound,
	}

	for _, opt := range opts {
		opt(de)
	}

	return de
}

func (e *DomainError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the error class so errors.Is(err, ErrInvalidArgument) works
func (e *DomainError) Unwrap() error {
	return e.class
}

// CodeOf extracts the ErrorCode from err if it is a DomainError, or "" otherwise
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
