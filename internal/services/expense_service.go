package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/models"
	"expense-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("amount must be a non-zero number")
	ErrInvalidExpenseID = errors.New("expense id must be a positive integer")
	ErrInvalidField     = errors.New("field must be one of: what, notes")
)

const autocompleteLimit = 20

// csvExportHeader defines the column order for ledger exports. Import
// understands the same layout, so an exported file round-trips.
var csvExportHeader = []string{"date", "amount", "category", "what", "notes", "taxable"}

type expenseService struct {
	repo    repositories.ExpenseRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo repositories.ExpenseRepositoryInterface, metrics MetricsRecorderInterface, logger *slog.Logger) ExpenseServiceInterface {
	return &expenseService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// ListExpenses loads every record and runs it through the view pipeline:
// filter, then consolidate, then sort. Each stage is skipped when its
// parameters are absent.
func (s *expenseService) ListExpenses(req *dto.ListExpensesRequest) ([]models.Expense, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	filters := models.ExpenseFilters{
		Query:     req.Query,
		Category:  req.Category,
		Direction: req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	expenses = FilterExpenses(expenses, filters)

	consolidated := models.IsValidConsolidateField(req.Consolidate)
	if consolidated {
		expenses = ConsolidateExpenses(expenses, req.Consolidate)
	}

	if req.Sort != "" {
		order := req.Order
		if order == "" {
			order = models.SortAscending
		}
		expenses = SortExpenses(expenses, req.Sort, order)
	}

	s.metrics.RecordListRequest(consolidated)
	return expenses, nil
}

// CreateExpense records a new ledger entry
func (s *expenseService) CreateExpense(req *dto.CreateExpenseRequest) (*models.Expense, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsZero() {
		return nil, ErrInvalidAmount
	}

	expense := &models.Expense{
		Amount:      amount,
		IsPositive:  req.IsPositive,
		ExpenseDate: req.ExpenseDate,
		Category:    req.Category,
		What:        req.What,
		Notes:       req.Notes,
		IsTaxable:   req.IsTaxable,
	}

	if err := s.repo.Create(expense); err != nil {
		return nil, err
	}

	s.metrics.RecordExpenseCreated(expense.DirectionLabel())
	s.logger.Info("expense recorded",
		"id", expense.ID,
		"category", expense.Category,
		"direction", expense.DirectionLabel(),
	)
	return expense, nil
}

// DeleteExpense removes a stored record. Consolidated rows carry synthetic
// negative IDs and are never deletable.
func (s *expenseService) DeleteExpense(id int64) error {
	if id <= 0 {
		return ErrInvalidExpenseID
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.metrics.RecordExpenseDeleted()
	s.logger.Info("expense deleted", "id", id)
	return nil
}

// Autocomplete returns distinct stored values of what or notes containing
// the given fragment
func (s *expenseService) Autocomplete(field, fragment string) ([]string, error) {
	if field != models.ConsolidateByWhat && field != models.ConsolidateByNotes {
		return nil, ErrInvalidField
	}
	values, err := s.repo.DistinctValues(field, fragment, autocompleteLimit)
	if err != nil {
		return nil, err
	}
	return values, nil
}

// SuggestedCategories returns the category vocabulary offered by the UI
func (s *expenseService) SuggestedCategories() []string {
	return models.SuggestedCategories()
}

// ExportCSV streams the full ledger in the import-compatible column layout
func (s *expenseService) ExportCSV(w io.Writer) error {
	expenses, err := s.repo.GetAll()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvExportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, e := range expenses {
		taxable := "no"
		if e.IsTaxable {
			taxable = "yes"
		}
		record := []string{
			models.FormatExpenseDate(e.ExpenseDate),
			e.Amount.StringFixed(2),
			e.Category,
			e.What,
			e.Notes,
			taxable,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
