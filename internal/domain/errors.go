// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"math"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMobileNumber is returned when a mobile number is not exactly 10 digits.
	ErrInvalidMobileNumber = errors.New("mobile number must be 10 digits")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidAmount is returned when a monetary amount is out of range.
	ErrInvalidAmount = errors.New("invalid amount")
)

// MaxAmount is the largest monetary amount a card or loan column can hold.
const MaxAmount = math.MaxInt32

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every ValidationError as an ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// isDigits reports whether s consists of exactly n ASCII digits.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// invalidField wraps a field-specific sentinel in a ValidationError.
func invalidField(field string, err error) error {
	return NewValidationError(field, "is invalid", err)
}

// amountField is a named monetary amount checked by validateAmounts.
type amountField struct {
	name  string
	value int
}

// validateAmounts checks that the total is positive and that every amount
// fits in [0, MaxAmount].
func validateAmounts(total amountField, totalErr error, others ...amountField) error {
	if total.value <= 0 {
		return invalidField(total.name, totalErr)
	}
	for _, f := range append([]amountField{total}, others...) {
		if f.value < 0 {
			return NewValidationError(f.name, "cannot be negative", ErrInvalidAmount)
		}
		if f.value > MaxAmount {
			return NewValidationError(f.name, "exceeds the maximum amount", ErrInvalidAmount)
		}
	}
	return nil
}

// ValidateMobileNumber checks that the given value is a 10 digit mobile number.
func ValidateMobileNumber(mobileNumber string) error {
	if !isDigits(mobileNumber, MobileNumberLength) {
		return NewValidationError("mobileNumber", "must be 10 digits", ErrInvalidMobileNumber)
	}
	return nil
}
