package application

import (
	"fmt"
	"strings"

	"worklog/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateDate checks that value is a well-formed YYYY-MM-DD date.
func ValidateDate(fieldName, value string) error {
	if !domain.ValidDate(value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected YYYY-MM-DD, got: %s", value),
		}
	}
	return nil
}

// ValidateClock checks that value is a well-formed HH:MM time.
func ValidateClock(fieldName, value string) error {
	if !domain.ValidClock(value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected HH:MM, got: %s", value),
		}
	}
	return nil
}

// ValidatePeriod checks that value names a known stats period.
func ValidatePeriod(fieldName string, value domain.Period) error {
	if !value.Valid() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected today|week|month|year, got: %s", value),
		}
	}
	return nil
}
