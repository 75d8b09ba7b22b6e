// Package common defines shared constants and sentinel errors used across
// client and server layers of GophTasks. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrConflict   = errors.New("already exists")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrValidation      = errors.New("validation error")
	ErrFeatureDisabled = errors.New("feature disabled")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// Error pairs one of the sentinel kinds above with a message that is safe
// to show to API callers. errors.Is matches the kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewError returns an *Error of the given kind.
func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}
