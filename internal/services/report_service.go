package services

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/models"
	"expense-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod = errors.New("period must be one of: daily, weekly, monthly")
	ErrInvalidRange  = errors.New("start date must not be after end date")
)

type reportService struct {
	repo    repositories.ExpenseRepositoryInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewReportService creates a new report service
func NewReportService(repo repositories.ExpenseRepositoryInterface, metrics MetricsRecorderInterface, logger *slog.Logger) ReportServiceInterface {
	return &reportService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Trend buckets outflow totals over time. Buckets between the first and last
// date are zero-filled so charts keep a continuous axis; an explicit
// start/end range pins the axis even when no rows fall inside it.
func (s *reportService) Trend(req *dto.TrendRequest) (*dto.TrendResponse, error) {
	period := req.Period
	if period == "" {
		period = models.PeriodWeekly
	}
	if !models.IsValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	expenses = FilterExpenses(expenses, models.ExpenseFilters{
		Query:     req.Query,
		Category:  req.Category,
		Direction: models.DirectionExpense,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})

	buckets := bucketByPeriod(expenses, period, start, end)

	s.metrics.RecordReportRequest("trend")
	return &dto.TrendResponse{Period: period, Buckets: buckets}, nil
}

// CategoryTotals sums absolute amounts per category, largest first. Ties keep
// the order categories were first seen in.
func (s *reportService) CategoryTotals(req *dto.CategoryReportRequest) ([]models.CategoryTotal, error) {
	if _, _, err := parseRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	direction := req.Type
	if direction == "" {
		direction = models.DirectionExpense
	}

	expenses, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	expenses = FilterExpenses(expenses, models.ExpenseFilters{
		Direction: direction,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})

	totals := make(map[string]*models.CategoryTotal)
	order := make([]string, 0)
	for _, e := range expenses {
		t, seen := totals[e.Category]
		if !seen {
			t = &models.CategoryTotal{Category: e.Category}
			totals[e.Category] = t
			order = append(order, e.Category)
		}
		t.Total = t.Total.Add(e.AbsAmount())
		t.Count++
	}

	out := make([]models.CategoryTotal, 0, len(order))
	for _, category := range order {
		out = append(out, *totals[category])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})

	s.metrics.RecordReportRequest("categories")
	return out, nil
}

// Summary aggregates the whole ledger in the database rather than in memory
func (s *reportService) Summary() (*models.LedgerSummary, error) {
	spent, err := s.repo.SumByDirection(false)
	if err != nil {
		return nil, err
	}
	earned, err := s.repo.SumByDirection(true)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountAll()
	if err != nil {
		return nil, err
	}

	s.metrics.RecordReportRequest("summary")
	return &models.LedgerSummary{
		TotalExpenses: spent,
		TotalIncome:   earned,
		NetBalance:    earned.Sub(spent),
		RecordCount:   int(count),
	}, nil
}

// parseRange parses an optional date range and rejects inverted bounds
func parseRange(startDate, endDate string) (start, end time.Time, err error) {
	var startOK, endOK bool
	if startDate != "" {
		start, startOK = models.ParseExpenseDate(startDate)
		if !startOK {
			return start, end, ErrInvalidRange
		}
	}
	if endDate != "" {
		end, endOK = models.ParseExpenseDate(endDate)
		if !endOK {
			return start, end, ErrInvalidRange
		}
	}
	if startOK && endOK && start.After(end) {
		return start, end, ErrInvalidRange
	}
	return start, end, nil
}

// bucketByPeriod groups outflow totals into chronological, zero-filled
// buckets. Rows with unparseable dates are skipped.
func bucketByPeriod(expenses []models.Expense, period string, start, end time.Time) []models.TrendPoint {
	totals := make(map[string]decimal.Decimal)
	var first, last time.Time

	for _, e := range expenses {
		date, ok := models.ParseExpenseDate(e.ExpenseDate)
		if !ok {
			continue
		}
		anchor := bucketAnchor(date, period)
		key := bucketKey(anchor, period)
		totals[key] = totals[key].Add(e.AbsAmount())
		if first.IsZero() || anchor.Before(first) {
			first = anchor
		}
		if last.IsZero() || anchor.After(last) {
			last = anchor
		}
	}

	if !start.IsZero() {
		first = bucketAnchor(start, period)
	}
	if !end.IsZero() {
		last = bucketAnchor(end, period)
	}
	if first.IsZero() || last.IsZero() || first.After(last) {
		return []models.TrendPoint{}
	}

	points := make([]models.TrendPoint, 0)
	for anchor := first; !anchor.After(last); anchor = nextBucket(anchor, period) {
		key := bucketKey(anchor, period)
		points = append(points, models.TrendPoint{
			Period: key,
			Total:  totals[key],
		})
	}
	return points
}

// bucketAnchor maps a date to the first day of its bucket. Weekly buckets are
// keyed by the Sunday on or before the date.
func bucketAnchor(date time.Time, period string) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case models.PeriodWeekly:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case models.PeriodMonthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func bucketKey(anchor time.Time, period string) string {
	if period == models.PeriodMonthly {
		return anchor.Format("2006-01")
	}
	return anchor.Format("2006-01-02")
}

func nextBucket(anchor time.Time, period string) time.Time {
	switch period {
	case models.PeriodWeekly:
		return anchor.AddDate(0, 0, 7)
	case models.PeriodMonthly:
		return anchor.AddDate(0, 1, 0)
	default:
		return anchor.AddDate(0, 0, 1)
	}
}
