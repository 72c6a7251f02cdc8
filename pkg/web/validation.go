package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BindErrorMsg extracts a human readable message from a gin binding error.
func BindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return "invalid request"
}

// GetErrorMsg maps a failed validation tag to a human readable suffix.
// Handlers prepend the field name.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "email":
		return " must be a valid email address"
	case "min":
		return " must be at least " + fe.Param() + " characters"
	case "max":
		return " must be at most " + fe.Param() + " characters"
	case "gte":
		return " must be greater than or equal to " + fe.Param()
	case "gt":
		return " must be greater than " + fe.Param()
	case "datetime":
		return " must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf(" failed %s validation", fe.Tag())
	}
}
