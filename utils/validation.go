package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FlattenValidationError converts a binding error into a field -> messages map
// suitable for the details section of a VALIDATION_ERROR response. Errors that
// did not come from the validator (e.g. malformed JSON) are reported under
// "body" so the caller still gets a field-shaped payload.
func FlattenValidationError(err error) map[string][]string {
	details := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = []string{err.Error()}
		return details
	}

	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		details[field] = append(details[field], violationMessage(fe))
	}
	return details
}

// FieldError builds a single-field details map for checks performed outside
// the binding layer, such as date parsing.
func FieldError(field, message string) map[string][]string {
	return map[string][]string{field: {message}}
}

func violationMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "invalid email"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "uuid4", "uuid":
		return fmt.Sprintf("invalid %s", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
