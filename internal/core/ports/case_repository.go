package ports

import (
	"context"

	"github.com/genvoice/casetrack/internal/core/domain"
)

// CaseRepository defines persistence operations for case records.
type CaseRepository interface {
	// FindAll returns every stored case.
	FindAll(ctx context.Context) ([]*domain.Case, error)
	// Upsert atomically replaces or inserts the case keyed by its name and
	// returns the stored record including its identifier. A replace does not
	// yield a new identifier, so implementations look it up.
	Upsert(ctx context.Context, c *domain.Case) (*domain.Case, error)
}
