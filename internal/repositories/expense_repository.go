package repositories

import (
	"errors"
	"fmt"
	"strings"

	"expense-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// autocompleteFields whitelists columns that may be queried for suggestions
var autocompleteFields = map[string]bool{
	"what":     true,
	"notes":    true,
	"category": true,
}

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a new expense record
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID
func (r *expenseRepository) GetByID(id int64) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetAll retrieves every expense, newest insertion first
func (r *expenseRepository) GetAll() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, nil
}

// Delete removes an expense by ID. Deleting an id that no longer exists is
// not an error: the record is gone either way.
func (r *expenseRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	return nil
}

// DistinctValues retrieves distinct non-empty values of a whitelisted column
// containing the given fragment, case-insensitively
func (r *expenseRepository) DistinctValues(field string, fragment string, limit int) ([]string, error) {
	if !autocompleteFields[field] {
		return nil, fmt.Errorf("field %q is not searchable", field)
	}

	var values []string
	query := r.db.Model(&models.Expense{}).
		Distinct(field).
		Where(fmt.Sprintf("%s <> ''", field)).
		Order(field)
	if fragment != "" {
		query = query.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, field), "%"+escapeLike(fragment)+"%")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck(field, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct %s values: %w", field, err)
	}
	return values, nil
}

// CountAll returns the total number of expense records
func (r *expenseRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}

// SumByDirection returns the absolute sum of all amounts in one direction
func (r *expenseRepository) SumByDirection(isPositive bool) (decimal.Decimal, error) {
	var total string
	row := r.db.Model(&models.Expense{}).
		Where("is_positive = ?", isPositive).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	sum, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse expense sum: %w", err)
	}
	return sum.Abs(), nil
}

// escapeLike lowercases the fragment and escapes LIKE metacharacters
func escapeLike(s string) string {
	s = strings.ToLower(s)
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
