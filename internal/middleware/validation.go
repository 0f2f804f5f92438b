package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
)

// NewValidationError wraps a binding error so the error handler reports it as
// a bad request with a readable message
func NewValidationError(err error) error {
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, ValidationErrorMessage(err))
}

// ValidationErrorMessage turns a binding error into a short human-readable
// message. Validator errors name the first failing field; anything else falls
// back to a generic message.
func ValidationErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return formatValidationError(validationErrs[0])
	}
	return "Invalid request body"
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
