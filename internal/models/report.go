package models

import "github.com/shopspring/decimal"

// Chart bucketing periods
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// IsValidPeriod checks a bucketing period name.
func IsValidPeriod(period string) bool {
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

// TrendPoint is one zero-filled time bucket of summed outflow magnitudes.
// Period is the bucket key: the date itself (daily), the Sunday on or before
// the date (weekly), or the year-month (monthly).
type TrendPoint struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
}

// CategoryTotal is one entry of the outflow-by-category chart, ordered by
// total descending.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// LedgerSummary holds the headline totals over the current view.
type LedgerSummary struct {
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	NetBalance    decimal.Decimal `json:"net_balance"`
	RecordCount   int             `json:"record_count"`
}
