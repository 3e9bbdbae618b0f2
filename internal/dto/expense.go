package dto

import (
	"expense-ledger/internal/models"
)

// Expense Request DTOs

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Amount      string `json:"amount" validate:"required"`
	IsPositive  bool   `json:"is_positive"`
	ExpenseDate string `json:"expense_date" validate:"required"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	What        string `json:"what" validate:"required,min=1"`
	Notes       string `json:"notes"`
	IsTaxable   bool   `json:"is_taxable"`
}

// ListExpensesRequest represents query parameters for the expense list pipeline
type ListExpensesRequest struct {
	Query       string `query:"q"`
	Category    string `query:"category"`
	Type        string `query:"type" validate:"omitempty,oneof=expense income"`
	StartDate   string `query:"start_date"`
	EndDate     string `query:"end_date"`
	Consolidate string `query:"consolidate" validate:"omitempty,oneof=what notes"`
	Sort        string `query:"sort" validate:"omitempty,oneof=date amount category what type"`
	Order       string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// Expense Response DTOs

// CreateExpenseResponse represents the response after recording an expense
type CreateExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
	Message string          `json:"message"`
}

// ListExpensesResponse represents the processed expense list
type ListExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int              `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// AutocompleteResponse represents distinct field values matching a prefix
type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

// CategoriesResponse represents the suggested category vocabulary
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
