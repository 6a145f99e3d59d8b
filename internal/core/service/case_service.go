package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/genvoice/casetrack/internal/core/domain"
	"github.com/genvoice/casetrack/internal/core/ports"
)

// CaseService implements case listing and upserts.
type CaseService struct {
	repo   ports.CaseRepository
	logger zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, logger: logger}
}

func (s *CaseService) ListCases(ctx context.Context) ([]*domain.Case, error) {
	return s.repo.FindAll(ctx)
}

func (s *CaseService) UpsertCase(ctx context.Context, input ports.UpsertCaseInput) (*domain.Case, error) {
	c, err := domain.NewCase(input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Upsert(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", stored.Name).Str("id", stored.ID).Msg("case upserted")
	return stored, nil
}
