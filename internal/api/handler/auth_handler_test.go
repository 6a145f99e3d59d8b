package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/genvoice/casetrack/internal/api/session"
	"github.com/genvoice/casetrack/internal/core/domain"
	"github.com/genvoice/casetrack/internal/core/ports"
)

type stubUserService struct {
	registerFn   func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
	loginFn      func(ctx context.Context, username, password string) (*domain.User, error)
	changeRoleFn func(ctx context.Context, username, password string, role domain.Role) (*ports.RoleChangeResult, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubUserService) ChangeRole(ctx context.Context, username, password string, role domain.Role) (*ports.RoleChangeResult, error) {
	return s.changeRoleFn(ctx, username, password, role)
}

type memorySessions struct {
	sessions map[string]string
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]string)}
}

func (s *memorySessions) Create(_ context.Context, sessionID, userID string, _ time.Duration) error {
	s.sessions[sessionID] = userID
	return nil
}

func (s *memorySessions) Get(_ context.Context, sessionID string) (string, error) {
	userID, ok := s.sessions[sessionID]
	if !ok {
		return "", ports.ErrSessionNotFound
	}
	return userID, nil
}

func (s *memorySessions) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newAuthHandler(svc ports.UserService) (*AuthHandler, *memorySessions) {
	store := newMemorySessions()
	mgr := session.NewManager(store, "secret", time.Hour)
	return NewAuthHandler(svc, mgr), store
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			if input.Username != "alice" || input.Password != "Abcdefg!" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "id-1", Name: "alice jones", Username: "alice", Password: "digest", Role: domain.RoleJunior}, nil
		},
	}
	h, _ := newAuthHandler(stub)

	body := strings.NewReader(`{"name":"Alice Jones","username":"alice","password":"Abcdefg!"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Alice Jones" {
		t.Fatalf("expected display name, got %v", resp["name"])
	}
	if resp["password"] != "digest" {
		t.Fatalf("expected digest in record, got %v", resp["password"])
	}
	if resp["id"] != "id-1" || resp["role"] != "Junior" {
		t.Fatalf("unexpected record: %v", resp)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h, _ := newAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateKey
		},
	}
	h, _ := newAuthHandler(stub)

	body := strings.NewReader(`{"name":"bob","username":"bob","password":"Abcdefg!"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return &domain.User{ID: "id-1", Username: "alice", Role: domain.RoleSenior}, nil
		},
	}
	h, store := newAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"Abcdefg!"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Logged in successfully (role: Senior)" {
		t.Fatalf("unexpected message %q", resp["message"])
	}

	cookieSet := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Fatalf("expected session cookie to be set")
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected one server-side session, got %d", len(store.sessions))
	}
}

func TestAuthHandler_Login_AlreadyAuthenticated(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h, _ := newAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity", &domain.User{ID: "id-1", Username: "alice"})

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Already logged in" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrAuthenticationFailed
		},
	}
	h, store := newAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("no session should be created on failed login")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	h, store := newAuthHandler(&stubUserService{})

	cookie, err := h.sessions.Issue(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Logged out successfully" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
	if len(store.sessions) != 0 {
		t.Fatalf("expected server-side session to be deleted")
	}

	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared")
	}
}

func TestAuthHandler_Promote(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		changeRoleFn: func(ctx context.Context, username, password string, role domain.Role) (*ports.RoleChangeResult, error) {
			if role != domain.RoleSenior {
				t.Fatalf("expected Senior target, got %q", role)
			}
			return &ports.RoleChangeResult{Message: "User promoted successfully", Changed: true}, nil
		},
	}
	h, _ := newAuthHandler(stub)

	body := strings.NewReader(`{"username":"bob","password":"Abcdefg!"}`)
	req := httptest.NewRequest(http.MethodPost, "/promote", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Promote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User promoted successfully" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestAuthHandler_Demote_AlreadyJunior(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		changeRoleFn: func(ctx context.Context, username, password string, role domain.Role) (*ports.RoleChangeResult, error) {
			if role != domain.RoleJunior {
				t.Fatalf("expected Junior target, got %q", role)
			}
			return &ports.RoleChangeResult{Message: "User is already a Junior"}, nil
		},
	}
	h, _ := newAuthHandler(stub)

	body := strings.NewReader(`{"username":"bob","password":"Abcdefg!"}`)
	req := httptest.NewRequest(http.MethodPost, "/demote", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Demote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User is already a Junior" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}
