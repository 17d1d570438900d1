package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrNotAuthorized          = errors.New("not authorized")
	ErrValidation             = errors.New("validation failed")
	ErrNotFound               = errors.New("not found")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidStateTransition = errors.New("invalid order status transition")
	ErrPersistence            = errors.New("persistence failure")
)

// Validationf builds a user-displayable validation error.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Persistence wraps a store failure, keeping the original message.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
