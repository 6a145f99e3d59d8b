package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for everything the persistence gateway can report. The
// HTTP layer maps each of these to exactly one status code; raw driver
// errors never travel past the mongo package.
var (
	// ErrMissingCredentials covers a login attempt without both fields.
	ErrMissingCredentials = errors.New("Missing parameters username and/or password")
	// ErrAuthenticationFailed covers an unknown username or a digest mismatch.
	ErrAuthenticationFailed = errors.New("Authentication failed")
	// ErrUnauthorized covers an authenticated caller lacking privileges.
	ErrUnauthorized = errors.New("Unauthorised")
	// ErrDuplicateKey covers a unique-index violation (username, case name).
	ErrDuplicateKey = errors.New("Value already exists")
	// ErrWriteFailed covers a write the store did not acknowledge.
	ErrWriteFailed = errors.New("Failed to write to database")
	// ErrNetworkTimeout covers a store operation exceeding its deadline.
	ErrNetworkTimeout = errors.New("Database network timeout")
	// ErrUnavailable covers an unreachable store or server selection timeout.
	ErrUnavailable = errors.New("Failed to connect to database")
	// ErrUserNotFound covers a session identity that no longer resolves.
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports one or more domain rule violations. Messages are
// joined with "; " when rendered, one message per offending field.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
