package models

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the auth layer. The HTTP boundary translates
// them to status codes; nothing below it retries or swallows them.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// at login, so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("Incorrect username or password")

	// ErrInvalidToken covers every token failure: bad signature, malformed
	// payload, expiry, missing subject, or a subject that no longer resolves
	// to a user.
	ErrInvalidToken = errors.New("Could not validate credentials")

	// ErrInactiveUser means the token was valid but the account is disabled.
	ErrInactiveUser = errors.New("Inactive user")

	// ErrNotAuthenticated means no bearer token was presented at all.
	ErrNotAuthenticated = errors.New("Not authenticated")
)

// NotFoundError is returned for a todo that is absent or owned by another
// user. Both cases produce the identical message on purpose.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Todo with id %d not found", e.ID)
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// errFieldRequired rejects a field that is present but blank.
func errFieldRequired(field string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("%s is required", field)}
}

// errFieldNull rejects a field that was explicitly sent as JSON null.
func errFieldNull(field string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("%s cannot be null", field)}
}

// ConstraintError reports a storage-level integrity failure, e.g. a todo
// pointing at a user that does not exist.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

// ConflictError reports a uniqueness clash, e.g. a taken username.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
