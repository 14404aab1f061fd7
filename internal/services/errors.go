package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the auth, task, and filter services. Handlers
// translate these to HTTP responses; no HTTP concept appears below the
// handler layer.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("task not found")
	ErrForbidden          = errors.New("task belongs to another user")
	ErrInvalidOption      = errors.New("invalid filter option")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
