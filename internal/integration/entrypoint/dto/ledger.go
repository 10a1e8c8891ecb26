// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for adding an income record.
type CreateIncomeRequest struct {
	Source string `json:"source" binding:"required"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Date   string `json:"date" binding:"required"`
}

// CreateExpenseRequest represents the request body for adding an expense record.
type CreateExpenseRequest struct {
	Category    string `json:"category" binding:"required"`
	Amount      int64  `json:"amount" binding:"gte=0"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// CreateSavingRequest represents the request body for adding a saving record.
type CreateSavingRequest struct {
	Title  string `json:"title" binding:"required"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Date   string `json:"date" binding:"required"`
}

// DeleteRecordRequest identifies the record to delete by its full attribute
// set. The date is accepted in any recognized input format.
type DeleteRecordRequest struct {
	Label  string `json:"label" binding:"required"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Date   string `json:"date" binding:"required"`
}

// IncomeResponse represents an income record in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Amount    int64     `json:"amount"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseResponse represents an expense record in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SavingResponse represents a saving record in API responses.
type SavingResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    int64     `json:"amount"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateExpenseResponse carries the stored record plus any advisory limit
// warnings raised by the addition.
type CreateExpenseResponse struct {
	Expense  ExpenseResponse  `json:"expense"`
	Warnings []BreachResponse `json:"warnings,omitempty"`
}

// DeleteRecordResponse reports whether a matching record was removed.
type DeleteRecordResponse struct {
	Deleted bool `json:"deleted"`
}

// ToIncomeResponse converts a domain IncomeRecord entity to its DTO.
func ToIncomeResponse(record *entity.IncomeRecord) IncomeResponse {
	return IncomeResponse{
		ID:        record.ID.String(),
		Source:    record.Source,
		Amount:    record.Amount,
		Date:      record.Date.String(),
		CreatedAt: record.CreatedAt,
	}
}

// ToExpenseResponse converts a domain ExpenseRecord entity to its DTO.
func ToExpenseResponse(record *entity.ExpenseRecord) ExpenseResponse {
	return ExpenseResponse{
		ID:          record.ID.String(),
		Category:    record.Category,
		Amount:      record.Amount,
		Date:        record.Date.String(),
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
	}
}

// ToSavingResponse converts a domain SavingRecord entity to its DTO.
func ToSavingResponse(record *entity.SavingRecord) SavingResponse {
	return SavingResponse{
		ID:        record.ID.String(),
		Title:     record.Title,
		Amount:    record.Amount,
		Date:      record.Date.String(),
		CreatedAt: record.CreatedAt,
	}
}
