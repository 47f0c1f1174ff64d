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

	// ErrNotClaimable is returned when a claim races another writer and the
	// ticket is no longer open
	ErrNotClaimable = errors.New("ticket is not claimable")

	// ErrInvalidTransition is returned for state changes outside the ticket
	// state machine
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDependencyCycle is returned when adding a dependency would create a
	// cycle
	ErrDependencyCycle = errors.New("dependency would create a cycle")

	// ErrNoEligibleTickets is returned when a project has no dispatchable work
	ErrNoEligibleTickets = errors.New("no eligible tickets")
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
