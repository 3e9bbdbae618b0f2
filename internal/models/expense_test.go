package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpense_Validate(t *testing.T) {
	tests := []struct {
		name    string
		expense Expense
		wantErr error
	}{
		{
			name: "valid outflow",
			expense: Expense{
				Amount:      decimal.NewFromFloat(-50.25),
				ExpenseDate: "2025-01-15",
				Category:    "food",
				What:        "Grocery shopping",
			},
			wantErr: nil,
		},
		{
			name: "valid inflow with time artifact in date",
			expense: Expense{
				Amount:      decimal.NewFromFloat(1200),
				IsPositive:  true,
				ExpenseDate: "2025-01-31T09:30:00Z",
				Category:    "income",
				What:        "Salary",
				IsTaxable:   true,
			},
			wantErr: nil,
		},
		{
			name: "zero amount",
			expense: Expense{
				ExpenseDate: "2025-01-15",
				Category:    "food",
				What:        "Groceries",
			},
			wantErr: ErrZeroAmount,
		},
		{
			name: "missing date",
			expense: Expense{
				Amount:   decimal.NewFromFloat(-10),
				Category: "food",
				What:     "Groceries",
			},
			wantErr: ErrMissingDate,
		},
		{
			name: "unparseable date",
			expense: Expense{
				Amount:      decimal.NewFromFloat(-10),
				ExpenseDate: "someday",
				Category:    "food",
				What:        "Groceries",
			},
			wantErr: ErrUnparseableDate,
		},
		{
			name: "missing category",
			expense: Expense{
				Amount:      decimal.NewFromFloat(-10),
				ExpenseDate: "2025-01-15",
				What:        "Groceries",
			},
			wantErr: ErrMissingCategory,
		},
		{
			name: "missing description",
			expense: Expense{
				Amount:      decimal.NewFromFloat(-10),
				ExpenseDate: "2025-01-15",
				Category:    "food",
			},
			wantErr: ErrMissingWhat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpense_Direction(t *testing.T) {
	outflow := Expense{Amount: decimal.NewFromFloat(-25.00)}
	assert.True(t, outflow.IsOutflow())
	assert.Equal(t, "expense", outflow.DirectionLabel())
	assert.Equal(t, "25", outflow.AbsAmount().String())

	inflow := Expense{Amount: decimal.NewFromFloat(25.00), IsPositive: true}
	assert.False(t, inflow.IsOutflow())
	assert.Equal(t, "income", inflow.DirectionLabel())
	assert.Equal(t, "25", inflow.AbsAmount().String())
}

func TestExpense_IsConsolidated(t *testing.T) {
	assert.True(t, (&Expense{ID: -1}).IsConsolidated())
	assert.False(t, (&Expense{ID: 1}).IsConsolidated())
	assert.False(t, (&Expense{}).IsConsolidated())
}
