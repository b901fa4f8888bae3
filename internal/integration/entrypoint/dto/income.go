package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Title    string `json:"title" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	SourceID string `json:"sourceId,omitempty"`
	Source   string `json:"source,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date,omitempty"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest = CreateIncomeRequest

// IncomeResponse represents a single income record in API responses.
type IncomeResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   int64  `json:"amount"`
	Source   string `json:"source"`
	SourceID string `json:"sourceId,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date"`
}

// ToIncomeResponse converts a domain Income entity to its response DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:       i.ID,
		Title:    i.Title,
		Amount:   i.Amount,
		Source:   i.Source,
		SourceID: i.SourceID,
		Notes:    i.Notes,
		Date:     i.OccurredAt.Format(time.RFC3339),
	}
}

// ToIncomeListResponse converts a slice of income records to response DTOs.
func ToIncomeListResponse(records []*entity.Income) []IncomeResponse {
	responses := make([]IncomeResponse, 0, len(records))
	for _, i := range records {
		responses = append(responses, ToIncomeResponse(i))
	}
	return responses
}
