package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/genvoice/casetrack/internal/api/metrics"
	"github.com/genvoice/casetrack/internal/core/ports"
)

// CaseHandler serves the case routes. Both are session-guarded.
type CaseHandler struct {
	cases ports.CaseService
}

func NewCaseHandler(cases ports.CaseService) *CaseHandler {
	return &CaseHandler{cases: cases}
}

// List returns every case record.
//
// @Summary      List all cases
// @Tags         cases
// @Produce      json
// @Success      200  {array}   caseResponse
// @Failure      401  {object}  errorResponse
// @Router       /cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	cases, err := h.cases.ListCases(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseListResponse(cases))
}

// Upsert creates or fully replaces a case keyed by its name.
//
// @Summary      Create or replace a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        body  body      upsertCaseRequest  true  "Case record"
// @Success      200   {object}  caseResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /case [post]
func (h *CaseHandler) Upsert(c echo.Context) error {
	var req upsertCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	stored, err := h.cases.UpsertCase(c.Request().Context(), ports.UpsertCaseInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.CasesUpsertedTotal.Inc()
	return c.JSON(http.StatusOK, toCaseResponse(stored))
}
