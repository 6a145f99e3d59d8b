package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/genvoice/casetrack/internal/core/domain"
	"github.com/genvoice/casetrack/internal/core/ports"
)

type stubCaseService struct {
	listFn   func(ctx context.Context) ([]*domain.Case, error)
	upsertFn func(ctx context.Context, input ports.UpsertCaseInput) (*domain.Case, error)
}

func (s *stubCaseService) ListCases(ctx context.Context) ([]*domain.Case, error) {
	return s.listFn(ctx)
}

func (s *stubCaseService) UpsertCase(ctx context.Context, input ports.UpsertCaseInput) (*domain.Case, error) {
	return s.upsertFn(ctx, input)
}

func TestCaseHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		listFn: func(ctx context.Context) ([]*domain.Case, error) {
			return []*domain.Case{
				{ID: "id-1", Name: "acme corp", Description: "x"},
				{ID: "id-2", Name: "globex", Description: "y"},
			}, nil
		},
	}
	h := NewCaseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/cases", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected two cases, got %d", len(resp))
	}
	if resp[0]["name"] != "Acme Corp" || resp[1]["name"] != "Globex" {
		t.Fatalf("expected display names, got %v", resp)
	}
}

func TestCaseHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		listFn: func(ctx context.Context) ([]*domain.Case, error) {
			return nil, nil
		},
	}
	h := NewCaseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/cases", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestCaseHandler_Upsert_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		upsertFn: func(ctx context.Context, input ports.UpsertCaseInput) (*domain.Case, error) {
			if input.Name != " acme corp " || input.Description != "x" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Case{ID: "id-1", Name: "acme corp", Description: "x"}, nil
		},
	}
	h := NewCaseHandler(stub)

	body := strings.NewReader(`{"name":" acme corp ","description":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/case", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "id-1" || resp["name"] != "Acme Corp" {
		t.Fatalf("unexpected record: %v", resp)
	}
}

func TestCaseHandler_Upsert_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		upsertFn: func(ctx context.Context, input ports.UpsertCaseInput) (*domain.Case, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewCaseHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/case", strings.NewReader(`{"name":"acme"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upsert(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCaseHandler_Upsert_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	h := NewCaseHandler(&stubCaseService{})

	req := httptest.NewRequest(http.MethodPost, "/case", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upsert(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
