package services

import (
	"io"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/models"
)

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	// Login checks the shared password and returns a signed session token
	Login(password string) (string, error)
	// ValidateToken accepts either a session token or the raw shared password
	ValidateToken(token string) error
}

// ExpenseServiceInterface defines the contract for expense business operations
type ExpenseServiceInterface interface {
	ListExpenses(req *dto.ListExpensesRequest) ([]models.Expense, error)
	CreateExpense(req *dto.CreateExpenseRequest) (*models.Expense, error)
	DeleteExpense(id int64) error
	Autocomplete(field, fragment string) ([]string, error)
	SuggestedCategories() []string
	ExportCSV(w io.Writer) error
}

// ReportServiceInterface defines the contract for aggregation reports
type ReportServiceInterface interface {
	Trend(req *dto.TrendRequest) (*dto.TrendResponse, error)
	CategoryTotals(req *dto.CategoryReportRequest) ([]models.CategoryTotal, error)
	Summary() (*models.LedgerSummary, error)
}

// ImportServiceInterface defines the contract for CSV import operations
type ImportServiceInterface interface {
	// Validate parses the CSV and reports per-row problems without persisting
	Validate(r io.Reader) ([]dto.CreateExpenseRequest, []dto.RowError, error)
	// Import validates the whole file, then submits rows one by one
	Import(r io.Reader) (*dto.ImportResultResponse, []dto.RowError, error)
	SampleCSV(rows int) ([]byte, error)
}

// MetricsRecorderInterface defines the contract for recording ledger metrics
type MetricsRecorderInterface interface {
	RecordExpenseCreated(direction string)
	RecordExpenseDeleted()
	RecordListRequest(consolidated bool)
	RecordImportRun(submitted, failed int)
	RecordReportRequest(report string)
	ObserveRequestDuration(path string, ms float64)
}
