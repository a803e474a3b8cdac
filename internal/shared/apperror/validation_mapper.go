package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessageSeparator joins the per-field messages of one validation failure.
const MessageSeparator = " | "

func formatFieldName(s string) string {
	// employee_id -> Employee Id
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func describe(e validator.FieldError) string {
	human := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return human + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", human, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", human, e.Param())
	case "email":
		return human + " is not a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", human, strings.Join(strings.Fields(e.Param()), ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", human, "YYYY-MM-DD")
	default:
		return human + " is invalid"
	}
}

// MapValidationError renders validator failures as one 422 error whose
// message is "<field>: <message>" per failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		parts := make([]string, 0, len(errs))
		for _, e := range errs {
			parts = append(parts, e.Field()+": "+describe(e))
		}
		return New(
			CodeInvalidInput,
			strings.Join(parts, MessageSeparator),
			http.StatusUnprocessableEntity,
		)
	}

	return Wrap(err, CodeInvalidInput, "Invalid input", http.StatusUnprocessableEntity)
}
