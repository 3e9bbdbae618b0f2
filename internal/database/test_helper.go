package database

import (
	"fmt"
	"testing"
	"time"

	"expense-ledger/internal/config"
	"expense-ledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestExpense inserts one expense row with sensible defaults; amount is
// the signed convention value (negative = outflow).
func CreateTestExpense(t *testing.T, db *DB, amount float64, date, category, what string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:      decimal.NewFromFloat(amount),
		IsPositive:  amount > 0,
		ExpenseDate: date,
		Category:    category,
		What:        what,
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}

// CreateTestIncome inserts one inflow row.
func CreateTestIncome(t *testing.T, db *DB, amount float64, date, category, what string, taxable bool) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:         decimal.NewFromFloat(amount),
		IsPositive:     true,
		ExpenseDate:    date,
		Category:       category,
		What:           what,
		IsTaxable:      taxable,
		SubmissionDate: time.Now().UTC(),
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}

	return expense
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"expenses",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
