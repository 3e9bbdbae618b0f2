package models

// Direction filter values
const (
	DirectionAny     = ""
	DirectionExpense = "expense"
	DirectionIncome  = "income"
)

// Consolidation grouping fields
const (
	ConsolidateByWhat  = "what"
	ConsolidateByNotes = "notes"
)

// Sortable view columns
const (
	SortByDate     = "date"
	SortByAmount   = "amount"
	SortByCategory = "category"
	SortByWhat     = "what"
	SortByType     = "type"

	SortAscending  = "asc"
	SortDescending = "desc"
)

// ExpenseFilters contains the view criteria applied to the in-memory record
// list. All supplied predicates are ANDed together.
type ExpenseFilters struct {
	Query     string // case-insensitive substring over what, notes, category
	Category  string // exact match, case-insensitive; empty = no constraint
	Direction string // DirectionExpense, DirectionIncome or DirectionAny
	StartDate string // inclusive calendar date bound (YYYY-MM-DD)
	EndDate   string // inclusive calendar date bound (YYYY-MM-DD)
}

// IsZero reports whether no predicate is supplied.
func (f ExpenseFilters) IsZero() bool {
	return f.Query == "" && f.Category == "" && f.Direction == DirectionAny &&
		f.StartDate == "" && f.EndDate == ""
}

// IsValidDirection checks a direction filter value.
func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionAny, DirectionExpense, DirectionIncome:
		return true
	default:
		return false
	}
}

// IsValidConsolidateField checks a consolidation grouping field.
func IsValidConsolidateField(field string) bool {
	switch field {
	case ConsolidateByWhat, ConsolidateByNotes:
		return true
	default:
		return false
	}
}

// IsValidSortColumn checks a sortable column name.
func IsValidSortColumn(column string) bool {
	switch column {
	case SortByDate, SortByAmount, SortByCategory, SortByWhat, SortByType:
		return true
	default:
		return false
	}
}
