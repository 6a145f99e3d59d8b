package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound reports an unknown or expired session identifier.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore maps opaque session identifiers to user identifiers
// server-side. Sessions expire after their TTL; Get on an expired or unknown
// session reports ErrSessionNotFound.
type SessionStore interface {
	Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (userID string, err error)
	Delete(ctx context.Context, sessionID string) error
}
