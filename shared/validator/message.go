package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// templates maps a validation tag to a client message. {field} is the json name.
var templates = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} is required",
	"email":    "{field} must be a valid email address",
	"number":   "{field} must contain digits only",
	"oneof":    "{field} must be one of {param}",
	"min":      "{field} must be at least {param} characters",
	"max":      "{field} must be at most {param} characters",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
}

// message describes the first failing rule that has a template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		template, ok := templates[fieldErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
