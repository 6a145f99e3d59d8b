package ports

import (
	"context"

	"github.com/genvoice/casetrack/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Implementations translate store failures into domain errors before
// returning; callers never see driver errors.
type UserRepository interface {
	// Insert persists a new user and returns the stored record including
	// its generated identifier. A duplicate username reports
	// domain.ErrDuplicateKey.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername reports domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID reports domain.ErrUserNotFound when the identifier does not
	// resolve, including when it is malformed.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateRole atomically sets the role field. It reports
	// domain.ErrWriteFailed when the store does not acknowledge the write.
	UpdateRole(ctx context.Context, id string, role domain.Role) error
}
