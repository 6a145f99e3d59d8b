// Package session issues and resolves the cookie-based session tokens. The
// cookie value is a signed JWT carrying only an opaque session identifier;
// the identifier maps to a user id server-side in the session store.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/genvoice/casetrack/internal/core/ports"
)

// CookieName is the cookie the session token travels in.
const CookieName = "casetrack_session"

// Manager creates, resolves and revokes sessions.
type Manager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
}

func NewManager(store ports.SessionStore, secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// Issue creates a server-side session for userID and returns the cookie
// carrying its signed token.
func (m *Manager) Issue(ctx context.Context, userID string) (*http.Cookie, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	sessionID := hex.EncodeToString(buf)

	if err := m.store.Create(ctx, sessionID, userID, m.ttl); err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(m.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Resolve verifies the signed token and returns the user id its session maps
// to. An invalid signature, an expired token or an unknown session all
// report ports.ErrSessionNotFound.
func (m *Manager) Resolve(ctx context.Context, token string) (string, error) {
	sessionID, err := m.parseSessionID(token)
	if err != nil {
		return "", ports.ErrSessionNotFound
	}
	return m.store.Get(ctx, sessionID)
}

// Revoke deletes the server-side session behind the token. Unparseable
// tokens are ignored: there is nothing to delete.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	sessionID, err := m.parseSessionID(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, sessionID)
}

// ExpiredCookie returns a cookie that clears the session on the client.
func (m *Manager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) parseSessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	sessionID, _ := claims["sid"].(string)
	if sessionID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sessionID, nil
}
