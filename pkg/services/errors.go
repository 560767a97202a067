// Package services implements the coordination operations exposed to agents:
// registration, messaging, reservations, cells, deferreds, analytics, and
// the coordinator guardrail. Services validate input, read projections
// through Ent, and write exclusively by appending events to the log store.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrCoordinatorOnly is returned when a coordinator-gated operation is
	// attempted by a non-coordinator session.
	ErrCoordinatorOnly = errors.New("coordinator-only")

	// ErrDeferredTimeout is returned when awaiting a deferred exceeds its deadline.
	ErrDeferredTimeout = errors.New("deferred timed out")

	// ErrDeferredExpired is returned when resolving a deferred past its expiry.
	ErrDeferredExpired = errors.New("deferred expired")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GuardError carries the machine-readable guard tag for operations rejected
// by a policy gate. Tool surfaces render it as {error, guard}.
type GuardError struct {
	Guard   string
	Message string
}

func (e *GuardError) Error() string {
	return e.Message
}

// NewGuardError creates a guard rejection with the given tag.
func NewGuardError(guard, message string) error {
	return &GuardError{Guard: guard, Message: message}
}

// GuardTag extracts the guard tag from an error chain, or "".
func GuardTag(err error) string {
	var ge *GuardError
	if errors.As(err, &ge) {
		return ge.Guard
	}
	return ""
}
