package ports

import (
	"context"

	"github.com/genvoice/casetrack/internal/core/domain"
)

// RegisterUserInput carries raw registration data from the transport layer.
// Role is optional and defaults to Junior.
type RegisterUserInput struct {
	Name     string
	Username string
	Password string
	Role     string
}

// RoleChangeResult reports the outcome of a role change. Changed is false
// when the user already held the target role.
type RoleChangeResult struct {
	Message string
	Changed bool
}

// UserService defines the account use cases.
type UserService interface {
	// Register validates and persists a new account, returning the stored
	// record with its generated identifier and password digest.
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	// Login returns the full stored record on success. Missing fields report
	// domain.ErrMissingCredentials; an unknown username or wrong password
	// reports domain.ErrAuthenticationFailed.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// ChangeRole authenticates with the supplied credentials and moves the
	// account to role. Already holding the role is informational, not an
	// error.
	ChangeRole(ctx context.Context, username, password string, role domain.Role) (*RoleChangeResult, error)
}
