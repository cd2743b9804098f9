package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/financeflow/financeflow_app/internal/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on a request DTO and maps failures
// into the application validation error bucket. Numeric range checks on
// monetary fields are the calculator's concern, not tag validation.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
