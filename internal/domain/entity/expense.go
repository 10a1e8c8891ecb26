// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// ExpenseRecord represents a single expense entry in the ledger.
type ExpenseRecord struct {
	ID          uuid.UUID
	Owner       string
	Category    string
	Amount      int64
	Date        valueobject.CalendarDate
	Description string
	CreatedAt   time.Time
}

// NewExpenseRecord creates a new ExpenseRecord entity.
func NewExpenseRecord(owner, category string, amount int64, date valueobject.CalendarDate, description string) *ExpenseRecord {
	return &ExpenseRecord{
		ID:          uuid.New(),
		Owner:       owner,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
