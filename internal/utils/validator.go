// internal/utils/validator.go
package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/saree-sanctuary/internal/validation"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// GetValidationErrors flattens struct-tag failures and document schema failures into
// response details.
func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if verr, ok := validation.AsError(err); ok {
		return append(validationErrors, ValidationError{
			Field:   verr.Field,
			Tag:     verr.Constraint,
			Message: verr.Message(),
		})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     tagOf(e),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func tagOf(e validator.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}

func getValidationMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "gte", "min":
		return field + " must be greater than or equal to " + e.Param()
	case "lte", "max":
		return field + " must be less than or equal to " + e.Param()
	default:
		return field + " is invalid"
	}
}
