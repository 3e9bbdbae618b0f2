package models

import (
	"strings"
	"time"
)

// Layouts accepted for stored expense dates. The column is plain text and
// historical rows occasionally carry a time-of-day artifact alongside the
// calendar date.
var expenseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseExpenseDate normalizes a stored expense date to a comparable value.
// Date-only values are anchored to midday so that range comparisons do not
// flip across timezone boundaries. Returns ok=false for unparseable input.
func ParseExpenseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range expenseDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			parsed = parsed.Add(12 * time.Hour)
		}
		return parsed, true
	}

	return time.Time{}, false
}

// FormatExpenseDate renders the calendar-date component of a stored value,
// or the raw value when it cannot be parsed.
func FormatExpenseDate(value string) string {
	parsed, ok := ParseExpenseDate(value)
	if !ok {
		return value
	}
	return parsed.Format("2006-01-02")
}
