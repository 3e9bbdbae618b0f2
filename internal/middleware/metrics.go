package middleware

import (
	"time"

	"expense-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RequestMetrics records the handling duration of every request against the
// matched route path, so /api/expenses/:id yields one series, not one per id.
func RequestMetrics(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			metrics.ObserveRequestDuration(c.Path(), float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}
