package apperror

import (
	"fmt"
	"strings"

	"hradmin/internal/shared/response"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// phone_number -> Phone Number
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// FieldErrors mengumpulkan SEMUA pelanggaran rule dari satu request,
// bukan fail-fast, supaya client bisa menampilkan semuanya sekaligus.
func FieldErrors(err error) []response.FieldError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []response.FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]response.FieldError, 0, len(errs))
	for _, e := range errs {
		// e.Field() sudah berupa nama json karena RegisterTagNameFunc di Init()
		field := e.Field()
		label := formatFieldName(field)

		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", label)
		case "email":
			msg = "Invalid email format"
		case "e164":
			msg = "Invalid phone number format"
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters long", label, e.Param())
		case "max":
			msg = fmt.Sprintf("%s can be at most %s characters long", label, e.Param())
		case "gt":
			msg = fmt.Sprintf("%s must be a positive integer", label)
		case "datetime":
			msg = fmt.Sprintf("%s must be in the format YYYY-MM-DD", label)
		default:
			msg = fmt.Sprintf("%s is invalid", label)
		}

		out = append(out, response.FieldError{Field: field, Message: msg})
	}

	return out
}
