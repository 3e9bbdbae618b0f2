package repositories

import (
	"expense-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id int64) (*models.Expense, error)
	GetAll() ([]models.Expense, error)
	Delete(id int64) error
	DistinctValues(field string, prefix string, limit int) ([]string, error)
	CountAll() (int64, error)
	SumByDirection(isPositive bool) (decimal.Decimal, error)
}
