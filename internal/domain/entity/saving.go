// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// SavingRecord represents a saving entry. Savings are write-only in the
// current scope: they are created and listed but never aggregated.
type SavingRecord struct {
	ID        uuid.UUID
	Owner     string
	Title     string
	Amount    int64
	Date      valueobject.CalendarDate
	CreatedAt time.Time
}

// NewSavingRecord creates a new SavingRecord entity.
func NewSavingRecord(owner, title string, amount int64, date valueobject.CalendarDate) *SavingRecord {
	return &SavingRecord{
		ID:        uuid.New(),
		Owner:     owner,
		Title:     title,
		Amount:    amount,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}
