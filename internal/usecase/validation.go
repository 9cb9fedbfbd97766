package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	} else if len(input.FirstName) > 200 {
		errors = append(errors, ValidationError{"first_name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	} else if len(input.LastName) > 200 {
		errors = append(errors, ValidationError{"last_name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.ResumeFilename) == "" {
		errors = append(errors, ValidationError{"resume", "is required"})
	}
	if len(input.ResumeData) == 0 {
		errors = append(errors, ValidationError{"resume", "file is empty"})
	}

	return errors
}

// isPDFFilename checks the extension only. Content sniffing and size limits
// are out of scope for intake.
func isPDFFilename(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
