package dto

import (
	"expense-ledger/internal/models"
)

// Report Request DTOs

// TrendRequest represents query parameters for the trend report
type TrendRequest struct {
	Period    string `query:"period" validate:"omitempty,oneof=daily weekly monthly"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Category  string `query:"category"`
	Query     string `query:"q"`
}

// CategoryReportRequest represents query parameters for the category report
type CategoryReportRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Type      string `query:"type" validate:"omitempty,oneof=expense income"`
}

// Report Response DTOs

// TrendResponse represents the time-bucketed spending trend
type TrendResponse struct {
	Period  string              `json:"period"`
	Buckets []models.TrendPoint `json:"buckets"`
}

// CategoryReportResponse represents per-category totals
type CategoryReportResponse struct {
	Categories []models.CategoryTotal `json:"categories"`
}

// SummaryResponse represents the whole-ledger summary
type SummaryResponse struct {
	Summary *models.LedgerSummary `json:"summary"`
}
