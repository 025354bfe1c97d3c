// Package validation contains pure field-level checks for the auth forms.
// Functions return nil when the value passes, or a *FieldError carrying a
// human-readable message. They never panic and perform no I/O.
package validation

import (
	"regexp"
	"strings"
)

// FieldError describes a single violated rule on a named form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Username checks the account-name rules: non-blank, 3–20 characters,
// letters/digits/underscores only.
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return &FieldError{Field: "username", Message: "Username is required"}
	}
	if len(username) < 3 {
		return &FieldError{Field: "username", Message: "Username must be at least 3 characters"}
	}
	if len(username) > 20 {
		return &FieldError{Field: "username", Message: "Username must be less than 20 characters"}
	}
	if !usernamePattern.MatchString(username) {
		return &FieldError{Field: "username", Message: "Username can only contain letters, numbers, and underscores"}
	}
	return nil
}

// Password checks the password rules: non-blank, 6–50 characters.
func Password(password string) error {
	if strings.TrimSpace(password) == "" {
		return &FieldError{Field: "password", Message: "Password is required"}
	}
	if len(password) < 6 {
		return &FieldError{Field: "password", Message: "Password must be at least 6 characters"}
	}
	if len(password) > 50 {
		return &FieldError{Field: "password", Message: "Password must be less than 50 characters"}
	}
	return nil
}

// ConfirmPassword checks that the confirmation is non-blank and matches the
// password.
func ConfirmPassword(confirmPassword, password string) error {
	if strings.TrimSpace(confirmPassword) == "" {
		return &FieldError{Field: "confirmPassword", Message: "Confirm password is required"}
	}
	if confirmPassword != password {
		return &FieldError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	return nil
}
