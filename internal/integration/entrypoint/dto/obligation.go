package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateObligationRequest represents the request body for debt/loan
// creation.
type CreateObligationRequest struct {
	Title   string `json:"title" binding:"required"`
	Total   int64  `json:"total" binding:"required,gt=0"`
	Paid    int64  `json:"paid" binding:"min=0"`
	DueDate string `json:"dueDate,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	Status  string `json:"status,omitempty"`
}

// UpdateObligationRequest represents the request body for debt/loan update.
type UpdateObligationRequest = CreateObligationRequest

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ObligationResponse represents a single debt or loan in API responses.
// DueDate keeps the machine-readable form for sorting; DueDateDisplay is
// the human formatting the UI shows.
type ObligationResponse struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	Title          string  `json:"title"`
	Total          int64   `json:"total"`
	Paid           int64   `json:"paid"`
	Remaining      int64   `json:"remaining"`
	Progress       float64 `json:"progress"`
	Status         string  `json:"status"`
	DueDate        string  `json:"dueDate"`
	DueDateDisplay string  `json:"dueDateDisplay"`
	Purpose        string  `json:"purpose,omitempty"`
	Date           string  `json:"date"`
}

// ToObligationResponse converts a domain Obligation entity to its response
// DTO.
func ToObligationResponse(o *entity.Obligation) ObligationResponse {
	return ObligationResponse{
		ID:             o.ID,
		Kind:           string(o.Kind),
		Title:          o.Title,
		Total:          o.Total,
		Paid:           o.Paid,
		Remaining:      o.Remaining,
		Progress:       o.Progress,
		Status:         string(o.Status),
		DueDate:        o.DueDate.Format(time.RFC3339),
		DueDateDisplay: o.DueDate.Format("02 Jan 2006"),
		Purpose:        o.Purpose,
		Date:           o.OccurredAt.Format(time.RFC3339),
	}
}

// ToObligationListResponse converts a slice of obligations to response
// DTOs.
func ToObligationListResponse(obligations []*entity.Obligation) []ObligationResponse {
	responses := make([]ObligationResponse, 0, len(obligations))
	for _, o := range obligations {
		responses = append(responses, ToObligationResponse(o))
	}
	return responses
}
