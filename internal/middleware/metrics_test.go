package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics_ObservesMatchedPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().ObserveRequestDuration("/api/expenses/:id", gomock.Any())

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/expenses/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/expenses/:id")

	handler := RequestMetrics(metrics)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestMetrics_ObservesFailedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().ObserveRequestDuration("/api/expenses", gomock.Any())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/expenses")

	handler := RequestMetrics(metrics)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError)
	})

	assert.Error(t, handler(c))
}
