// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request bodies using `validate` struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Field errors are flattened into a single message.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, len(validationErrs))
	for idx, fieldErr := range validationErrs {
		if fieldErr.Param() != "" {
			messages[idx] = fieldErr.Field() + " failed '" + fieldErr.Tag() + "=" + fieldErr.Param() + "'"
		} else {
			messages[idx] = fieldErr.Field() + " failed '" + fieldErr.Tag() + "'"
		}
	}

	return errors.New(strings.Join(messages, "; "))
}
