package services

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"expense-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// consolidationNoise matches the characters ignored when grouping rows by
// description: whitespace and common punctuation.
var consolidationNoise = regexp.MustCompile("[\\s'\"`.,;:!?()-]")

// NormalizeGroupKey lowercases a field value and strips noise characters so
// "Coffee, beans" and "coffee beans" land in the same group.
func NormalizeGroupKey(value string) string {
	return consolidationNoise.ReplaceAllString(strings.ToLower(value), "")
}

// FilterExpenses returns the expenses matching every set filter. The input
// slice is not modified.
func FilterExpenses(expenses []models.Expense, filters models.ExpenseFilters) []models.Expense {
	if filters.IsZero() {
		return expenses
	}

	query := strings.ToLower(filters.Query)
	category := strings.ToLower(filters.Category)

	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if query != "" && !matchesQuery(&e, query) {
			continue
		}
		if category != "" && strings.ToLower(e.Category) != category {
			continue
		}
		if filters.Direction == models.DirectionExpense && !e.IsOutflow() {
			continue
		}
		if filters.Direction == models.DirectionIncome && e.IsOutflow() {
			continue
		}
		if filters.StartDate != "" || filters.EndDate != "" {
			date, ok := models.ParseExpenseDate(e.ExpenseDate)
			if !ok {
				continue
			}
			day := date.Truncate(24 * time.Hour)
			if filters.StartDate != "" {
				if start, ok := models.ParseExpenseDate(filters.StartDate); ok && day.Before(start.Truncate(24*time.Hour)) {
					continue
				}
			}
			if filters.EndDate != "" {
				if end, ok := models.ParseExpenseDate(filters.EndDate); ok && day.After(end.Truncate(24*time.Hour)) {
					continue
				}
			}
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e *models.Expense, query string) bool {
	return strings.Contains(strings.ToLower(e.What), query) ||
		strings.Contains(strings.ToLower(e.Notes), query) ||
		strings.Contains(strings.ToLower(e.Category), query)
}

// ConsolidateExpenses merges rows that share a normalized category plus field
// value into a single synthetic row carrying the group sum, so the same
// description under two categories stays two rows. Synthetic rows keep the
// list position of the group's first member and get sequential negative IDs so
// they can never collide with stored records. Single-member groups pass
// through unchanged.
func ConsolidateExpenses(expenses []models.Expense, field string) []models.Expense {
	if !models.IsValidConsolidateField(field) {
		return expenses
	}

	type group struct {
		index int
		rows  []models.Expense
	}

	groups := make(map[string]*group)
	for i, e := range expenses {
		key := groupKey(&e, field)
		g, seen := groups[key]
		if !seen {
			g = &group{index: i}
			groups[key] = g
		}
		g.rows = append(g.rows, e)
	}

	out := make([]models.Expense, 0, len(expenses))
	syntheticID := int64(0)

	for i := range expenses {
		g := groups[groupKey(&expenses[i], field)]
		if g.index != i {
			continue
		}
		if len(g.rows) == 1 {
			out = append(out, g.rows[0])
			continue
		}
		syntheticID--
		out = append(out, consolidateGroup(g.rows, field, syntheticID))
	}

	return out
}

// groupKey builds the consolidation key from the normalized category and
// field value. An empty field still keys, so same-category rows with blank
// notes merge when consolidating by notes.
func groupKey(e *models.Expense, field string) string {
	return NormalizeGroupKey(e.Category) + "\x00" + NormalizeGroupKey(fieldValue(e, field))
}

func fieldValue(e *models.Expense, field string) string {
	if field == models.ConsolidateByNotes {
		return e.Notes
	}
	return e.What
}

// consolidateGroup folds a multi-row group into one synthetic expense. The
// signed amounts sum, so mixed inflow and outflow rows net out.
func consolidateGroup(rows []models.Expense, field string, id int64) models.Expense {
	sum := decimal.Zero
	latest := rows[0].ExpenseDate
	latestTime, _ := models.ParseExpenseDate(rows[0].ExpenseDate)
	for _, r := range rows {
		sum = sum.Add(r.Amount)
		if t, ok := models.ParseExpenseDate(r.ExpenseDate); ok && t.After(latestTime) {
			latestTime = t
			latest = r.ExpenseDate
		}
	}

	merged := rows[0]
	merged.ID = id
	merged.Amount = sum
	merged.IsPositive = sum.IsPositive()
	merged.ExpenseDate = latest
	// the marker lands on the non-grouping field
	if field == models.ConsolidateByNotes {
		merged.What = rows[0].What + " (consolidated)"
	} else {
		merged.Notes = rows[0].Notes + " (consolidated)"
	}
	return merged
}

// SortExpenses orders the list by the given column. The sort is stable, so
// rows that compare equal keep their relative order. Amounts compare by
// absolute value regardless of direction.
func SortExpenses(expenses []models.Expense, column, order string) []models.Expense {
	if !models.IsValidSortColumn(column) {
		return expenses
	}
	descending := order == models.SortDescending

	sort.SliceStable(expenses, func(i, j int) bool {
		less := compareExpenses(&expenses[i], &expenses[j], column)
		if less == 0 {
			return false
		}
		if descending {
			return less > 0
		}
		return less < 0
	})
	return expenses
}

func compareExpenses(a, b *models.Expense, column string) int {
	switch column {
	case models.SortByAmount:
		return a.AbsAmount().Cmp(b.AbsAmount())
	case models.SortByCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	case models.SortByWhat:
		return strings.Compare(strings.ToLower(a.What), strings.ToLower(b.What))
	case models.SortByType:
		return strings.Compare(a.DirectionLabel(), b.DirectionLabel())
	default:
		// unparseable dates compare as the oldest possible value
		at, aok := models.ParseExpenseDate(a.ExpenseDate)
		bt, bok := models.ParseExpenseDate(b.ExpenseDate)
		if !aok || !bok {
			if aok == bok {
				return 0
			}
			if aok {
				return 1
			}
			return -1
		}
		if at.Before(bt) {
			return -1
		}
		if at.After(bt) {
			return 1
		}
		return 0
	}
}
