package usecase

import (
	"errors"
	"fmt"

	"movie-booking/pkg/utils"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	// ErrPaymentFailed means the processor refused or never confirmed the charge
	ErrPaymentFailed = errors.New("payment failed")
	// ErrChargedNotBooked means the charge went through but no booking was stored
	ErrChargedNotBooked = errors.New("payment successful but booking failed")
)

// ValidationError carries per-field messages and matches ErrValidation
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// validate runs the struct tags on req and returns a *ValidationError on failure
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func fieldError(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}
