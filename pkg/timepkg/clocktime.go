// Package timepkg provides clock time helpers shared by delivery layers.
package timepkg

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ClockTimeLayout is the 24-hour wall clock format entries carry.
const ClockTimeLayout = "15:04"

// IsClockTime returns true if the value is a valid HH:MM wall clock time.
func IsClockTime(value string) bool {
	_, err := time.Parse(ClockTimeLayout, value)
	return err == nil
}

// ValidClockTime validates a request field as an HH:MM wall clock time.
var ValidClockTime validator.Func = func(fl validator.FieldLevel) bool {
	if value, ok := fl.Field().Interface().(string); ok {
		return IsClockTime(value)
	}

	return false
}
