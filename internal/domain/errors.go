package domain

import (
	"errors"
	"fmt"
)

// Sentinel domain errors. Call sites branch on these with errors.Is;
// provider-specific codes never leak past the infrastructure layer.
var (
	// ErrNotFound means the requested resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists means the resource already exists (unique constraint)
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput means the request failed validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict means the operation conflicts with current state
	ErrConflict = errors.New("resource conflict")
	// ErrUnauthorized means missing or invalid credentials
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable means a collaborating service (or one of its tables or
	// endpoints) is not provisioned or not configured
	ErrUnavailable = errors.New("service unavailable")
	// ErrInternal is an internal error
	ErrInternal = errors.New("internal error")
)

// DomainError carries a machine-readable code alongside a user-safe message.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (logs and internal propagation)
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the user-facing message without internal detail
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a resource-not-found error
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewAlreadyExistsError creates an already-exists error
func NewAlreadyExistsError(resourceType, name string) error {
	return &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s '%s' already exists", resourceType, name),
		Err:     ErrAlreadyExists,
	}
}

// NewInvalidInputError creates a validation error
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) error {
	return &DomainError{
		Code:    "CONFLICT",
		Message: message,
		Err:     ErrConflict,
	}
}

// NewUnavailableError creates a service-unavailable error
func NewUnavailableError(service string) error {
	return &DomainError{
		Code:    "UNAVAILABLE",
		Message: fmt.Sprintf("%s is currently unavailable", service),
		Err:     ErrUnavailable,
	}
}

// NewInternalError creates an internal error without exposing detail
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is an already-exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidInput reports whether err is a validation error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict reports whether err is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnauthorized reports whether err is an authorization error
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsUnavailable reports whether err is a service-unavailable error
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsInternalError reports whether err is an internal error
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
