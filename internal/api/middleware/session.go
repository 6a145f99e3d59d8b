package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/genvoice/casetrack/internal/api/session"
	"github.com/genvoice/casetrack/internal/core/domain"
	"github.com/genvoice/casetrack/internal/core/ports"
)

// identityKey is the echo context key the current user is stored under.
const identityKey = "identity"

// LoadIdentity resolves the session cookie and attaches the matching user to
// the request context. Every failure mode — no cookie, bad signature,
// expired session, deleted user — leaves the request anonymous; it is never
// an error by itself.
func LoadIdentity(mgr *session.Manager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			userID, err := mgr.Resolve(ctx, cookie.Value)
			if err != nil {
				return next(c)
			}

			user, err := users.FindByID(ctx, userID)
			if err != nil {
				return next(c)
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Identity(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}

// Identity returns the authenticated user for the request, or nil when the
// request is anonymous.
func Identity(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}
