package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyFile      = errors.New("uploaded file contains no data rows")
	ErrMissingColumns = errors.New("required columns are missing")
)

// columnAliases maps logical fields to header fragments. A header matches a
// field when it contains one of the fragments, case-insensitively, so
// "Expense Date" and "transaction_date" both bind to date.
var columnAliases = map[string][]string{
	"date":     {"date"},
	"amount":   {"amount"},
	"category": {"category"},
	"what":     {"what", "description"},
	"notes":    {"notes"},
	"taxable":  {"taxable"},
}

var requiredColumns = []string{"date", "amount", "category", "what"}

type importService struct {
	expenses ExpenseServiceInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(expenses ExpenseServiceInterface, metrics MetricsRecorderInterface, logger *slog.Logger) ImportServiceInterface {
	return &importService{
		expenses: expenses,
		metrics:  metrics,
		logger:   logger,
	}
}

// Validate parses the CSV and checks every data row. Nothing is persisted;
// either all rows come back as requests or the row errors explain why not.
func (s *importService) Validate(r io.Reader) ([]dto.CreateExpenseRequest, []dto.RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, ErrEmptyFile
	}

	columns, missing := mapColumns(records[0])
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	requests := make([]dto.CreateExpenseRequest, 0, len(records)-1)
	rowErrors := make([]dto.RowError, 0)

	for i, record := range records[1:] {
		row := i + 1
		req, errs := buildRequest(record, columns, row)
		if len(errs) > 0 {
			rowErrors = append(rowErrors, errs...)
			continue
		}
		requests = append(requests, req)
	}

	if len(rowErrors) > 0 {
		return nil, rowErrors, nil
	}
	return requests, nil, nil
}

// Import validates the whole file first, then submits the rows one by one.
// A row that fails at submission time does not stop the rest.
func (s *importService) Import(r io.Reader) (*dto.ImportResultResponse, []dto.RowError, error) {
	requests, rowErrors, err := s.Validate(r)
	if err != nil {
		return nil, nil, err
	}
	if len(rowErrors) > 0 {
		return nil, rowErrors, nil
	}

	result := &dto.ImportResultResponse{}
	for i := range requests {
		if _, err := s.expenses.CreateExpense(&requests[i]); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.RowError{
				Row:     i + 1,
				Message: err.Error(),
			})
			s.logger.Warn("import row rejected", "row", i+1, "error", err)
			continue
		}
		result.Submitted++
	}

	s.metrics.RecordImportRun(result.Submitted, result.Failed)
	s.logger.Info("import finished", "submitted", result.Submitted, "failed", result.Failed)
	return result, nil, nil
}

// SampleCSV generates a downloadable example file in the expected layout
func (s *importService) SampleCSV(rows int) ([]byte, error) {
	if rows <= 0 {
		rows = 10
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvExportHeader); err != nil {
		return nil, err
	}

	categories := models.SuggestedCategories()
	start := time.Now().AddDate(0, -3, 0)
	for i := 0; i < rows; i++ {
		amount := decimal.NewFromFloat(gofakeit.Price(1, 250)).Neg()
		taxable := "no"
		if gofakeit.Bool() {
			taxable = "yes"
		}
		record := []string{
			gofakeit.DateRange(start, time.Now()).Format("2006-01-02"),
			amount.StringFixed(2),
			categories[gofakeit.Number(0, len(categories)-1)],
			gofakeit.ProductName(),
			gofakeit.Sentence(4),
			taxable,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// mapColumns binds header positions to logical fields and reports which
// required fields found no header
func mapColumns(header []string) (map[string]int, []string) {
	columns := make(map[string]int)
	for idx, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		for field, aliases := range columnAliases {
			if _, bound := columns[field]; bound {
				continue
			}
			for _, alias := range aliases {
				if strings.Contains(normalized, alias) {
					columns[field] = idx
					break
				}
			}
		}
	}

	missing := make([]string, 0)
	for _, field := range requiredColumns {
		if _, ok := columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	return columns, missing
}

// buildRequest validates one data row and converts it to a create request
func buildRequest(record []string, columns map[string]int, row int) (dto.CreateExpenseRequest, []dto.RowError) {
	var req dto.CreateExpenseRequest
	var errs []dto.RowError

	cell := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	rawAmount := cell("amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		errs = append(errs, dto.RowError{Row: row, Field: "amount", Message: fmt.Sprintf("%q is not a number", rawAmount)})
	} else if amount.IsZero() {
		errs = append(errs, dto.RowError{Row: row, Field: "amount", Message: "amount must not be zero"})
	}

	rawDate := cell("date")
	if rawDate == "" {
		errs = append(errs, dto.RowError{Row: row, Field: "date", Message: "date is required"})
	} else if _, ok := models.ParseExpenseDate(rawDate); !ok {
		errs = append(errs, dto.RowError{Row: row, Field: "date", Message: fmt.Sprintf("%q is not a recognized date", rawDate)})
	}

	category := cell("category")
	if category == "" {
		errs = append(errs, dto.RowError{Row: row, Field: "category", Message: "category is required"})
	}

	what := cell("what")
	if what == "" {
		errs = append(errs, dto.RowError{Row: row, Field: "what", Message: "description is required"})
	}

	if len(errs) > 0 {
		return req, errs
	}

	// sign is discarded; imported rows are always outflows
	req = dto.CreateExpenseRequest{
		Amount:      rawAmount,
		IsPositive:  false,
		ExpenseDate: rawDate,
		Category:    category,
		What:        what,
		Notes:       cell("notes"),
		IsTaxable:   parseTaxable(cell("taxable")),
	}
	return req, nil
}

func parseTaxable(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true", "1", "y":
		return true
	default:
		return false
	}
}
