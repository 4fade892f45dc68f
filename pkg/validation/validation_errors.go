package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Flatten joins every field message into the single string sent to clients.
func Flatten(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		if e.Kind() == reflect.Bool {
			return fmt.Sprintf("%s must be accepted", field)
		}
		return fmt.Sprintf("%s is required", field)

	case "notblank":
		return fmt.Sprintf("%s is required", field)

	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)

	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(param), ", "))

	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)

	case "uuid", "uuid4":
		return fmt.Sprintf("%s is not a valid identifier", field)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}
