package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/errors"
	"expense-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ImportHandler serves the CSV import endpoints
type ImportHandler struct {
	importService services.ImportServiceInterface
	logger        *slog.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// Import validates an uploaded CSV file and, when every row passes, submits
// the rows one by one
// POST /api/expenses/import
func (h *ImportHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("multipart field \"file\" is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	result, rowErrors, err := h.importService.Import(file)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrEmptyFile):
			return SendError(c, errors.ImportEmptyFile)
		case stderrors.Is(err, services.ErrMissingColumns):
			return SendError(c, errors.ImportMissingColumns, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}
	if len(rowErrors) > 0 {
		return SendError(c, errors.ImportRowsInvalid, errors.WithDetails(formatRowErrors(rowErrors)...))
	}

	h.logger.Info("csv import accepted",
		"file", fileHeader.Filename,
		"submitted", result.Submitted,
		"failed", result.Failed,
	)
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    result,
		Message: "Import finished",
	})
}

// SampleCSV returns a generated example file in the importable layout
// GET /api/expenses/import/sample
func (h *ImportHandler) SampleCSV(c echo.Context) error {
	rows := getIntParam(c, "rows", 10)

	data, err := h.importService.SampleCSV(rows)
	if err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sample-import.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

func formatRowErrors(rowErrors []dto.RowError) []string {
	details := make([]string, len(rowErrors))
	for i, re := range rowErrors {
		if re.Field != "" {
			details[i] = fmt.Sprintf("row %d, %s: %s", re.Row, re.Field, re.Message)
			continue
		}
		details[i] = fmt.Sprintf("row %d: %s", re.Row, re.Message)
	}
	return details
}
