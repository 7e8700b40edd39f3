package service

import (
	"errors"

	"zumpfinanc/internal/repository"
)

// ValidationError reports the first invalid field of an entry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// BusinessRuleError is a rejected operation the caller can correct.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string { return e.Message }

// AuthenticationError is returned for an unknown email or a wrong password.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

var (
	// ErrNotFound is returned by lookups that match nothing.
	ErrNotFound = repository.ErrNotFound

	// ErrUnsavedEntry means Update or Delete was called on an entry that was
	// never saved. It is a caller bug, not a user error.
	ErrUnsavedEntry = errors.New("entry has no id: save it before updating or deleting")

	ErrEmailTaken      = &BusinessRuleError{Message: "email already registered"}
	ErrUnknownEmail    = &AuthenticationError{Message: "user not found for the given email"}
	ErrInvalidPassword = &AuthenticationError{Message: "invalid password"}
)
