package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrZeroAmount      = errors.New("expense amount must be non-zero")
	ErrMissingDate     = errors.New("expense date is required")
	ErrUnparseableDate = errors.New("expense date is not a recognizable date")
	ErrMissingCategory = errors.New("expense category is required")
	ErrMissingWhat     = errors.New("expense description is required")
)

// Expense is the single persisted entity: one dated inflow or outflow.
//
// The stored amount is signed by convention (negative for expenses, positive
// for income) but direction is carried solely by IsPositive; display and
// comparison always use the absolute magnitude.
type Expense struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	IsPositive     bool            `gorm:"not null;default:false" json:"is_positive"`
	ExpenseDate    string          `gorm:"type:text;not null;index" json:"expense_date"`
	Category       string          `gorm:"type:varchar(100);not null;index" json:"category"`
	What           string          `gorm:"type:text;not null" json:"what"`
	Notes          string          `gorm:"type:text" json:"notes"`
	IsTaxable      bool            `gorm:"not null;default:false" json:"is_taxable"`
	SubmissionDate time.Time       `gorm:"not null" json:"submission_date"`
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// BeforeCreate normalizes the stored sign from the direction flag and stamps
// the submission date. Records are never updated in place, so this is the
// only write-side hook.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.IsPositive {
		e.Amount = e.Amount.Abs()
	} else {
		e.Amount = e.Amount.Abs().Neg()
	}

	if e.SubmissionDate.IsZero() {
		e.SubmissionDate = time.Now().UTC()
	}

	return e.Validate()
}

// Validate checks the creation invariants. A record with a zero amount,
// missing or unparseable date, or empty category/description is rejected
// before it reaches the store.
func (e *Expense) Validate() error {
	if e.Amount.IsZero() {
		return ErrZeroAmount
	}
	if e.ExpenseDate == "" {
		return ErrMissingDate
	}
	if _, ok := ParseExpenseDate(e.ExpenseDate); !ok {
		return ErrUnparseableDate
	}
	if e.Category == "" {
		return ErrMissingCategory
	}
	if e.What == "" {
		return ErrMissingWhat
	}
	return nil
}

// AbsAmount returns the display magnitude of the record.
func (e *Expense) AbsAmount() decimal.Decimal {
	return e.Amount.Abs()
}

// IsOutflow reports whether the record reduces net balance.
func (e *Expense) IsOutflow() bool {
	return !e.IsPositive
}

// DirectionLabel returns the textual direction used for sorting and export.
func (e *Expense) DirectionLabel() string {
	if e.IsPositive {
		return "income"
	}
	return "expense"
}

// Date returns the parsed transaction date, ok=false when unparseable.
func (e *Expense) Date() (time.Time, bool) {
	return ParseExpenseDate(e.ExpenseDate)
}

// IsConsolidated reports whether the record is a display-only aggregate
// produced by the view pipeline rather than a stored row. Synthetic ids are
// negative and never refer back to the store.
func (e *Expense) IsConsolidated() bool {
	return e.ID < 0
}
