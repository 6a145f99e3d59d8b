package ports

import (
	"context"

	"github.com/genvoice/casetrack/internal/core/domain"
)

// UpsertCaseInput carries raw case data from the transport layer.
type UpsertCaseInput struct {
	Name        string
	Description string
}

// CaseService defines the case use cases.
type CaseService interface {
	ListCases(ctx context.Context) ([]*domain.Case, error)
	// UpsertCase validates input and atomically replaces-or-inserts the case
	// keyed by its normalized name.
	UpsertCase(ctx context.Context, input UpsertCaseInput) (*domain.Case, error)
}
