package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/genvoice/casetrack/internal/core/domain"
	"github.com/genvoice/casetrack/internal/core/ports"
	"github.com/genvoice/casetrack/internal/pkg/credentials"
)

// UserService implements registration, login and role changes.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	user, err := domain.NewUser(input.Name, input.Username, input.Password, input.Role)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, err
	}

	if !credentials.Verify(password, user.Password) {
		return nil, domain.ErrAuthenticationFailed
	}

	return user, nil
}

// ChangeRole re-authenticates with the supplied credentials, then moves the
// account to role. When the account already holds the role the result is an
// informational message and no write is performed.
func (s *UserService) ChangeRole(ctx context.Context, username, password string, role domain.Role) (*ports.RoleChangeResult, error) {
	user, err := s.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if user.Role == role {
		return &ports.RoleChangeResult{
			Message: fmt.Sprintf("User is already a %s", role),
		}, nil
	}

	if err := s.repo.UpdateRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	verb := "demoted"
	if role == domain.RoleSenior {
		verb = "promoted"
	}
	s.logger.Info().Str("username", user.Username).Str("role", string(role)).Msg("user role changed")

	return &ports.RoleChangeResult{
		Message: fmt.Sprintf("User %s successfully", verb),
		Changed: true,
	}, nil
}
