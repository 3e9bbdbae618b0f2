package services

import (
	"fmt"
	"testing"

	"expense-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeExpense(id int64, amount float64, date, category, what string) models.Expense {
	return models.Expense{
		ID:          id,
		Amount:      decimal.NewFromFloat(amount),
		IsPositive:  amount > 0,
		ExpenseDate: date,
		Category:    category,
		What:        what,
	}
}

func TestNormalizeGroupKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Coffee, beans", "coffeebeans"},
		{"coffee beans", "coffeebeans"},
		{"  WEEKLY-shop!  ", "weeklyshop"},
		{"it's a 'test'", "itsatest"},
		{"(monthly) rent.", "monthlyrent"},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeGroupKey(tt.input), "input %q", tt.input)
	}
}

func TestFilterExpenses_NoFilters(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "lunch"),
		makeExpense(2, 50, "2024-01-02", "income", "refund"),
	}

	result := FilterExpenses(expenses, models.ExpenseFilters{})

	assert.Len(t, result, 2)
}

func TestFilterExpenses_Query(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "Grocery run"),
		makeExpense(2, -20, "2024-01-02", "travel", "bus ticket"),
		{ID: 3, Amount: decimal.NewFromInt(-5), ExpenseDate: "2024-01-03", Category: "food", What: "coffee", Notes: "grocery store card"},
	}

	result := FilterExpenses(expenses, models.ExpenseFilters{Query: "GROCERY"})

	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(3), result[1].ID)
}

func TestFilterExpenses_Direction(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "lunch"),
		makeExpense(2, 50, "2024-01-02", "income", "refund"),
	}

	outflows := FilterExpenses(expenses, models.ExpenseFilters{Direction: models.DirectionExpense})
	require.Len(t, outflows, 1)
	assert.Equal(t, int64(1), outflows[0].ID)

	inflows := FilterExpenses(expenses, models.ExpenseFilters{Direction: models.DirectionIncome})
	require.Len(t, inflows, 1)
	assert.Equal(t, int64(2), inflows[0].ID)
}

func TestFilterExpenses_Category(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "Food", "lunch"),
		makeExpense(2, -20, "2024-01-02", "travel", "bus"),
	}

	result := FilterExpenses(expenses, models.ExpenseFilters{Category: "food"})

	require.Len(t, result, 1)
	assert.Equal(t, int64(1), result[0].ID)
}

func TestFilterExpenses_DateRange(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "before"),
		makeExpense(2, -20, "2024-01-15", "food", "inside"),
		makeExpense(3, -30, "2024-02-01", "food", "after"),
		makeExpense(4, -40, "garbage", "food", "unparseable"),
	}

	result := FilterExpenses(expenses, models.ExpenseFilters{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-31",
	})

	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)
}

func TestFilterExpenses_DateRangeInclusiveBounds(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-10", "food", "on start"),
		makeExpense(2, -20, "2024-01-31", "food", "on end"),
	}

	result := FilterExpenses(expenses, models.ExpenseFilters{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-31",
	})

	assert.Len(t, result, 2)
}

func TestConsolidateExpenses_MergesMatchingRows(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "Coffee beans"),
		makeExpense(2, -20, "2024-01-05", "travel", "bus"),
		makeExpense(3, -15, "2024-01-10", "food", "coffee, beans!"),
	}
	expenses[0].Notes = "card"

	result := ConsolidateExpenses(expenses, models.ConsolidateByWhat)

	require.Len(t, result, 2)

	merged := result[0]
	assert.Equal(t, int64(-1), merged.ID)
	assert.True(t, merged.IsConsolidated())
	// grouping field stays intact, the marker goes on the other one
	assert.Equal(t, "Coffee beans", merged.What)
	assert.Equal(t, "card (consolidated)", merged.Notes)
	assert.True(t, merged.Amount.Equal(decimal.NewFromInt(-25)), "got %s", merged.Amount)
	assert.Equal(t, "2024-01-10", merged.ExpenseDate)

	assert.Equal(t, int64(2), result[1].ID)
}

func TestConsolidateExpenses_SingleRowsPassThrough(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "lunch"),
		makeExpense(2, -20, "2024-01-02", "food", "dinner"),
	}

	result := ConsolidateExpenses(expenses, models.ConsolidateByWhat)

	require.Len(t, result, 2)
	assert.Equal(t, expenses, result)
}

func TestConsolidateExpenses_EmptyNotesGroupWithinCategory(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "lunch"),
		makeExpense(2, -20, "2024-01-02", "food", "dinner"),
		makeExpense(3, -30, "2024-01-03", "travel", "bus"),
	}

	result := ConsolidateExpenses(expenses, models.ConsolidateByNotes)

	// blank notes still key, so the two food rows merge; travel stays apart
	require.Len(t, result, 2)

	merged := result[0]
	assert.Equal(t, int64(-1), merged.ID)
	assert.True(t, merged.Amount.Equal(decimal.NewFromInt(-30)), "got %s", merged.Amount)
	assert.Equal(t, "lunch (consolidated)", merged.What)
	assert.Empty(t, merged.Notes)

	assert.Equal(t, int64(3), result[1].ID)
}

func TestConsolidateExpenses_GroupsScopedByCategory(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "membership"),
		makeExpense(2, -20, "2024-01-02", "health", "membership"),
	}

	result := ConsolidateExpenses(expenses, models.ConsolidateByWhat)

	// same description under two categories stays two rows
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)
}

func TestConsolidateExpenses_SequentialSyntheticIDs(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-01", "food", "coffee"),
		makeExpense(2, -20, "2024-01-02", "food", "coffee"),
		makeExpense(3, -30, "2024-01-03", "travel", "bus"),
		makeExpense(4, -40, "2024-01-04", "travel", "bus"),
	}

	result := ConsolidateExpenses(expenses, models.ConsolidateByWhat)

	require.Len(t, result, 2)
	assert.Equal(t, int64(-1), result[0].ID)
	assert.Equal(t, int64(-2), result[1].ID)
}

func TestConsolidateExpenses_PreservesTotalSum(t *testing.T) {
	gofakeit.Seed(11)

	descriptions := []string{"coffee", "rent", "groceries", "gym", "cinema"}
	expenses := make([]models.Expense, 0, 50)
	for i := 0; i < 50; i++ {
		amount := gofakeit.Float64Range(-200, 200)
		if amount == 0 {
			amount = 1
		}
		expenses = append(expenses, makeExpense(
			int64(i+1),
			amount,
			fmt.Sprintf("2024-01-%02d", gofakeit.Number(1, 28)),
			"misc",
			descriptions[gofakeit.Number(0, len(descriptions)-1)],
		))
	}

	before := decimal.Zero
	for _, e := range expenses {
		before = before.Add(e.Amount)
	}

	result := ConsolidateExpenses(expenses, models.ConsolidateByWhat)

	after := decimal.Zero
	for _, e := range result {
		after = after.Add(e.Amount)
	}
	assert.True(t, before.Equal(after), "sum changed from %s to %s", before, after)
}

func TestSortExpenses_ByAbsoluteAmount(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -100, "2024-01-01", "rent", "rent"),
		makeExpense(2, 50, "2024-01-02", "income", "refund"),
		makeExpense(3, -20, "2024-01-03", "food", "lunch"),
	}

	result := SortExpenses(expenses, models.SortByAmount, models.SortAscending)

	assert.Equal(t, []int64{3, 2, 1}, ids(result))
}

func TestSortExpenses_Descending(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-05", "food", "a"),
		makeExpense(2, -10, "2024-01-01", "food", "b"),
	}

	result := SortExpenses(expenses, models.SortByDate, models.SortDescending)

	assert.Equal(t, []int64{1, 2}, ids(result))
}

func TestSortExpenses_StableOnEqualKeys(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -25, "2024-01-01", "food", "a"),
		makeExpense(2, 25, "2024-01-02", "income", "b"),
		makeExpense(3, -25, "2024-01-03", "food", "c"),
	}

	result := SortExpenses(expenses, models.SortByAmount, models.SortAscending)

	// 25.00 out and 25.00 in compare equal, so input order holds
	assert.Equal(t, []int64{1, 2, 3}, ids(result))
}

func TestSortExpenses_UnparseableDateSortsOldest(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(1, -10, "2024-01-05", "food", "a"),
		makeExpense(2, -20, "not a date", "food", "b"),
		makeExpense(3, -30, "2024-01-01", "food", "c"),
	}

	result := SortExpenses(expenses, models.SortByDate, models.SortAscending)

	assert.Equal(t, []int64{2, 3, 1}, ids(result))
}

func TestSortExpenses_UnknownColumnLeavesOrder(t *testing.T) {
	expenses := []models.Expense{
		makeExpense(2, -20, "2024-01-02", "food", "b"),
		makeExpense(1, -10, "2024-01-01", "food", "a"),
	}

	result := SortExpenses(expenses, "submission_date", models.SortAscending)

	assert.Equal(t, []int64{2, 1}, ids(result))
}

func ids(expenses []models.Expense) []int64 {
	out := make([]int64, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}
