// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrSkillHierarchyTooDeep is returned when a sub-skill chain exceeds
	// MaxSkillDepth, which only happens if the parent references form a cycle
	// or the stored tree is corrupt.
	ErrSkillHierarchyTooDeep = errors.New("skill hierarchy exceeds maximum depth")
)

// validate is shared by the entity Validate methods.
var validate = validator.New()

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for field wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// structError converts the first validator failure into a ValidationError.
func structError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return NewValidationError(fe.Field(), "failed on the '"+fe.Tag()+"' rule", ErrValidation)
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
