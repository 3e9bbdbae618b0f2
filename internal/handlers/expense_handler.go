package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/errors"
	"expense-ledger/internal/models"
	"expense-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler serves the expense CRUD and autocomplete endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	logger         *slog.Logger
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// ListExpenses returns the ledger after the filter, consolidate and sort
// stages
// GET /api/expenses
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	var req dto.ListExpensesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	expenses, err := h.expenseService.ListExpenses(&req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

// CreateExpense records a new ledger entry
// POST /api/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	}

	expense, err := h.expenseService.CreateExpense(&req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidAmount):
			return SendError(c, errors.ValidationInvalidAmount)
		case stderrors.Is(err, models.ErrZeroAmount):
			return SendError(c, errors.ValidationInvalidAmount)
		case stderrors.Is(err, models.ErrMissingDate), stderrors.Is(err, models.ErrUnparseableDate):
			return SendError(c, errors.ValidationInvalidDate)
		case stderrors.Is(err, models.ErrMissingCategory), stderrors.Is(err, models.ErrMissingWhat):
			return SendError(c, errors.ExpenseMissingFields, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Expense: expense,
		Message: "Expense recorded successfully",
	})
}

// DeleteExpense removes a stored ledger entry
// DELETE /api/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		if stderrors.Is(err, services.ErrInvalidExpenseID) {
			return SendError(c, errors.ExpenseInvalidID)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Expense deleted successfully",
	})
}

// Autocomplete suggests previously stored values for a field
// GET /api/autocomplete/:field
func (h *ExpenseHandler) Autocomplete(c echo.Context) error {
	field := c.Param("field")
	fragment := c.QueryParam("q")

	suggestions, err := h.expenseService.Autocomplete(field, fragment)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidField) {
			return SendError(c, errors.ExpenseInvalidField)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AutocompleteResponse{
		Suggestions: suggestions,
	})
}

// Categories returns the suggested category vocabulary
// GET /api/categories
func (h *ExpenseHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CategoriesResponse{
		Categories: h.expenseService.SuggestedCategories(),
	})
}

// ExportCSV streams the full ledger as a CSV download
// GET /api/expenses/export
func (h *ExpenseHandler) ExportCSV(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.expenseService.ExportCSV(c.Response()); err != nil {
		h.logger.Error("csv export failed", "error", err)
		return err
	}
	return nil
}
