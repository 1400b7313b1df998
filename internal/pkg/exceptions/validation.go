package exceptions

import (
	"fmt"
	"strings"

	"onboarding-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first validator error into a
// client-facing message. Field names are lowercased to match JSON tags.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	return formatFieldError(validationErrors[0])
}

func FormatAllValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return strings.Join(messages, "; ")
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())
	message, exists := constvars.CustomValidationErrorMessages[fieldErr.Tag()]
	if !exists {
		return fmt.Sprintf("%s is invalid", field)
	}
	if constvars.TagsWithParams[fieldErr.Tag()] {
		message = fmt.Sprintf(message, fieldErr.Param())
	}
	return fmt.Sprintf("%s %s", field, message)
}
