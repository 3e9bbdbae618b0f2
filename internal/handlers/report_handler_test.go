package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-ledger/internal/dto"
	apperrors "expense-ledger/internal/errors"
	"expense-ledger/internal/models"
	"expense-ledger/internal/services"
	"expense-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	reportService *service_mocks.MockReportServiceInterface
	handler       *ReportHandler
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.reportService = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.reportService, slog.Default())
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerTestSuite) get(path string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return rec, s.echo.NewContext(req, rec)
}

func (s *ReportHandlerTestSuite) TestTrend() {
	s.reportService.EXPECT().Trend(gomock.Any()).DoAndReturn(func(req *dto.TrendRequest) (*dto.TrendResponse, error) {
		s.Equal("monthly", req.Period)
		return &dto.TrendResponse{
			Period: "monthly",
			Buckets: []models.TrendPoint{
				{Period: "2024-01", Total: decimal.NewFromInt(120)},
			},
		}, nil
	})

	rec, c := s.get("/api/reports/trend?period=monthly")

	s.NoError(s.handler.Trend(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TrendResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("monthly", response.Period)
	s.Len(response.Buckets, 1)
}

func (s *ReportHandlerTestSuite) TestTrend_InvalidPeriod() {
	rec, c := s.get("/api/reports/trend?period=hourly")

	s.NoError(s.handler.Trend(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(apperrors.ReportInvalidPeriod), response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestTrend_InvertedRange() {
	s.reportService.EXPECT().Trend(gomock.Any()).Return(nil, services.ErrInvalidRange)

	rec, c := s.get("/api/reports/trend?start_date=2024-02-01&end_date=2024-01-01")

	s.NoError(s.handler.Trend(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(apperrors.ReportInvalidRange), response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestCategories() {
	s.reportService.EXPECT().CategoryTotals(gomock.Any()).Return([]models.CategoryTotal{
		{Category: "rent", Total: decimal.NewFromInt(900), Count: 1},
		{Category: "food", Total: decimal.NewFromInt(250), Count: 8},
	}, nil)

	rec, c := s.get("/api/reports/categories")

	s.NoError(s.handler.Categories(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategoryReportResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Categories, 2)
	s.Equal("rent", response.Categories[0].Category)
}

func (s *ReportHandlerTestSuite) TestSummary() {
	s.reportService.EXPECT().Summary().Return(&models.LedgerSummary{
		TotalExpenses: decimal.NewFromInt(150),
		TotalIncome:   decimal.NewFromInt(500),
		NetBalance:    decimal.NewFromInt(350),
		RecordCount:   12,
	}, nil)

	rec, c := s.get("/api/reports/summary")

	s.NoError(s.handler.Summary(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(12, response.Summary.RecordCount)
}
