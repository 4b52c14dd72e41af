package services

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned for any failed login. It never says
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the actor may not modify a suggestion.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries every user-facing message produced by a failed
// form validation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func validationErr(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
