package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/genvoice/casetrack/internal/api/metrics"
	"github.com/genvoice/casetrack/internal/api/middleware"
	"github.com/genvoice/casetrack/internal/api/session"
	"github.com/genvoice/casetrack/internal/core/domain"
	"github.com/genvoice/casetrack/internal/core/ports"
)

// AuthHandler serves registration, login/logout and the role-change routes.
type AuthHandler struct {
	users    ports.UserService
	sessions *session.Manager
}

func NewAuthHandler(users ports.UserService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  userResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	user, err := h.users.Register(c.Request().Context(), ports.RegisterUserInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func registerResult(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return "invalid"
	case errors.Is(err, domain.ErrDuplicateKey):
		return "conflict"
	}
	return "error"
}

// Login authenticates a user and establishes a cookie session. Logging in
// while already authenticated is a no-op.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	if middleware.Identity(c) != nil {
		return c.JSON(http.StatusOK, messageResponse{Message: "Already logged in"})
	}

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	cookie, err := h.sessions.Issue(c.Request().Context(), user.ID)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	c.SetCookie(cookie)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Logged in successfully (role: %s)", user.Role),
	})
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrAuthenticationFailed) || errors.Is(err, domain.ErrMissingCredentials) {
		return "failure"
	}
	return "error"
}

// Logout tears down the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Revoke(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessions.ExpiredCookie())

	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Promote moves the account identified by the body credentials to Senior.
// The route authenticates from the body, not the session.
//
// @Summary      Promote a user to Senior
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "User credentials"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Router       /promote [post]
func (h *AuthHandler) Promote(c echo.Context) error {
	return h.changeRole(c, domain.RoleSenior, "promote")
}

// Demote moves the account identified by the body credentials to Junior.
//
// @Summary      Demote a user to Junior
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "User credentials"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Router       /demote [post]
func (h *AuthHandler) Demote(c echo.Context) error {
	return h.changeRole(c, domain.RoleJunior, "demote")
}

func (h *AuthHandler) changeRole(c echo.Context, role domain.Role, direction string) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.users.ChangeRole(c.Request().Context(), req.Username, req.Password, role)
	if err != nil {
		metrics.RoleChangesTotal.WithLabelValues(direction, "error").Inc()
		return err
	}

	result := "noop"
	if res.Changed {
		result = "changed"
	}
	metrics.RoleChangesTotal.WithLabelValues(direction, result).Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: res.Message})
}
