// Package validator wires go-playground/validator into echo's request
// validation hook.
package validator

import (
	domainerrors "ledger/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

// CustomValidator adapts the validator library to echo's Validator interface.
type CustomValidator struct {
	validate *validatorlib.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{validate: validatorlib.New()}
}

// Validate checks the struct tags on a bound request payload. Failures map
// to the validation error of the application taxonomy so the error handler
// renders a 400 with field details.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
