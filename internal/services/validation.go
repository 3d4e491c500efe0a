package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// FieldError is a single signup validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the structured list of signup validation failures.
// It implements error so services can return it alongside sentinel errors.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	msgInvalidEmail = "Please provide a valid email"
	msgWeakPassword = "Password must be at least 8 characters with 1 upper case letter, 1 lower case letter, 1 number and 1 symbol"
)

// validateSignup checks the email format and the password complexity rules
// before any storage is touched. Returns nil when everything passes.
func validateSignup(email, password string) ValidationErrors {
	var errs ValidationErrors

	if !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: msgInvalidEmail})
	}

	if !passwordIsStrong(password) {
		errs = append(errs, FieldError{Field: "password", Message: msgWeakPassword})
	}

	return errs
}

// passwordIsStrong requires at least 8 characters with an upper case letter,
// a lower case letter, a digit and a symbol.
func passwordIsStrong(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}
