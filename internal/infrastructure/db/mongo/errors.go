package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/genvoice/casetrack/internal/core/domain"
)

// mapStoreError converts a driver failure into the matching domain error.
// Duplicate keys become conflicts, exceeded deadlines become network
// timeouts and server selection failures become unavailability. Anything
// unrecognised is wrapped and surfaces as an internal error upstream.
func mapStoreError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return domain.ErrDuplicateKey
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrNetworkTimeout
	case mongo.IsTimeout(err):
		// Not a context deadline: the driver gave up selecting a server.
		return domain.ErrUnavailable
	case mongo.IsNetworkError(err):
		return domain.ErrUnavailable
	}
	return fmt.Errorf("%s: %w", op, err)
}
