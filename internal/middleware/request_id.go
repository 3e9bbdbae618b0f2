package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Every response carries a trace id so a failure in the logs can be matched
// to what the client saw.
const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"
)

// RequestID assigns a trace id to each request, reusing the caller's when the
// X-Trace-ID header is set and minting a uuid otherwise. The id lands on the
// echo context for handlers and is echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace id set by RequestID, or "" when the
// middleware did not run.
func GetTraceID(c echo.Context) string {
	id, _ := c.Get(TraceIDContextKey).(string)
	return id
}
