package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns json names into labels: "startDate" -> "Start Date", "account_no" -> "Account No".
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r == '_' {
			b.WriteRune(' ')
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(b.String())
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		// first failing field only, like the inline form banner
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "email":
			return New(CodeInvalidInput, "Please enter a valid email address", http.StatusBadRequest)
		case "oneof":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s must be one of: %s", humanReadableField, strings.ReplaceAll(e.Param(), " ", ", ")),
				http.StatusBadRequest,
			)
		case "min", "gte":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", humanReadableField, e.Param()), http.StatusBadRequest)
		case "max", "lte":
			return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s", humanReadableField, e.Param()), http.StatusBadRequest)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}

// ValidateStruct runs the shared validator and maps the first failure.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return MapValidationError(err)
	}
	return nil
}
