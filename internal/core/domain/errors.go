package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail              = errors.New("email already registered")
	ErrInvalidCredentials          = errors.New("invalid credentials")
	ErrUserNotFound                = errors.New("user not found")
	ErrInvalidToken                = errors.New("invalid token")
	ErrSweetExists                 = errors.New("sweet with this name already exists")
	ErrSweetNotFound               = errors.New("sweet not found")
	ErrInsufficientStockOrNotFound = errors.New("insufficient stock or sweet not found")
	ErrInvalidID                   = errors.New("invalid sweet id")
	ErrValidation                  = errors.New("validation failed")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
