package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
// The total is derived server-side from the components and cannot be set.
type CreateExpenseRequest struct {
	Title         string `json:"title" binding:"required"`
	Subtotal      int64  `json:"subtotal" binding:"min=0"`
	Shipping      int64  `json:"shipping" binding:"min=0"`
	ServiceFee    int64  `json:"serviceFee" binding:"min=0"`
	AdditionalFee int64  `json:"additionalFee" binding:"min=0"`
	Discount      int64  `json:"discount" binding:"min=0"`
	CategoryID    string `json:"categoryId,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Date          string `json:"date,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest = CreateExpenseRequest

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Amount        int64  `json:"amount"`
	Subtotal      int64  `json:"subtotal"`
	Shipping      int64  `json:"shipping"`
	ServiceFee    int64  `json:"serviceFee"`
	AdditionalFee int64  `json:"additionalFee"`
	Discount      int64  `json:"discount"`
	Category      string `json:"category"`
	CategoryID    string `json:"categoryId,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Date          string `json:"date"`
}

// ToExpenseResponse converts a domain Expense entity to its response DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Title:         e.Title,
		Amount:        e.Amount,
		Subtotal:      e.Subtotal,
		Shipping:      e.Shipping,
		ServiceFee:    e.ServiceFee,
		AdditionalFee: e.AdditionalFee,
		Discount:      e.Discount,
		Category:      e.Category,
		CategoryID:    e.CategoryID,
		Notes:         e.Notes,
		Date:          e.OccurredAt.Format(time.RFC3339),
	}
}

// ToExpenseListResponse converts a slice of expenses to response DTOs.
func ToExpenseListResponse(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, ToExpenseResponse(e))
	}
	return responses
}
