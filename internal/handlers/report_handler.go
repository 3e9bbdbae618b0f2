package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/errors"
	"expense-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the aggregation endpoints
type ReportHandler struct {
	reportService services.ReportServiceInterface
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Trend returns zero-filled, time-bucketed outflow totals
// GET /api/reports/trend
func (h *ReportHandler) Trend(c echo.Context) error {
	var req dto.TrendRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ReportInvalidPeriod)
	}

	trend, err := h.reportService.Trend(&req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidPeriod):
			return SendError(c, errors.ReportInvalidPeriod)
		case stderrors.Is(err, services.ErrInvalidRange):
			return SendError(c, errors.ReportInvalidRange)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, trend)
}

// Categories returns per-category outflow totals, largest first
// GET /api/reports/categories
func (h *ReportHandler) Categories(c echo.Context) error {
	var req dto.CategoryReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	totals, err := h.reportService.CategoryTotals(&req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidRange) {
			return SendError(c, errors.ReportInvalidRange)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryReportResponse{
		Categories: totals,
	})
}

// Summary returns the headline ledger totals
// GET /api/reports/summary
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.reportService.Summary()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{
		Summary: summary,
	})
}
