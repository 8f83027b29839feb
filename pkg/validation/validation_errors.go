package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the envelope's "errors" array.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldNames maps struct field names to their JSON names
var fieldNames = map[string]string{
	"Email":          "email",
	"Password":       "password",
	"Role":           "role",
	"FirstName":      "first_name",
	"LastName":       "last_name",
	"Phone":          "phone",
	"CompanyID":      "company_id",
	"CompanyName":    "company_name",
	"Title":          "title",
	"Description":    "description",
	"Requirements":   "requirements",
	"Location":       "location",
	"SalaryMin":      "salary_min",
	"SalaryMax":      "salary_max",
	"EmploymentType": "employment_type",
	"Status":         "status",
	"CoverLetter":    "cover_letter",
	"ResumeURL":      "resume_url",
	"Name":           "name",
	"Website":        "website",
}

// FormatErrors converts validator.ValidationErrors into per-field messages
// for the response envelope. Non-validation errors fall back to one generic
// entry so malformed JSON still produces the same response shape.
func FormatErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	errs := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, FieldError{
			Field:   fieldName(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return errs
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := fieldName(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email address"
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "valid_phone":
		return "Please provide a valid phone number"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must not exceed %s characters", field, param)
		}
		return fmt.Sprintf("%s must not exceed %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Split(param, " "), ", "))
	case "gte":
		return fmt.Sprintf("%s must be a positive number", field)
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fieldName(param))
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}

// fieldName returns the JSON name for a struct field
func fieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}
