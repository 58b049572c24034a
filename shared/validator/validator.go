package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"alora/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// customRules are registered on top of the built-in tags.
var customRules = map[string]val.Func{
	"notblank": notBlank,
}

// notBlank rejects strings that are empty once surrounding whitespace is removed.
func notBlank(field val.FieldLevel) bool {
	if str, ok := field.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}

	return !field.Field().IsZero()
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	for tag, rule := range customRules {
		if err := validate.RegisterValidation(tag, rule); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
}

// Validate decodes a JSON body into data and validates the result.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.Validation(failure.KindMalformedPayload, "failed to decode request body", err.Error()) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct reports the first failing rule as a bad request.
func ValidateStruct[T any](data *T) error {
	return asFailure(validate.Struct(data))
}

// InvalidFields validates the struct and returns the json names of every failing field,
// in declaration order. It returns nil when the struct is valid.
func InvalidFields[T any](data *T) []string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(valErrors))
	for _, valErr := range valErrors {
		fields = append(fields, valErr.Field())
	}

	return fields
}

func ValidateVar(field any, tag string) error {
	return asFailure(validate.Var(field, tag))
}

func asFailure(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}
