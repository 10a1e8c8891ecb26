// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// IncomeRecord represents a single income entry in the ledger. Records are
// immutable after creation; deletion matches on the full attribute set, not
// on the record ID.
type IncomeRecord struct {
	ID        uuid.UUID
	Owner     string
	Source    string
	Amount    int64
	Date      valueobject.CalendarDate
	CreatedAt time.Time
}

// NewIncomeRecord creates a new IncomeRecord entity.
func NewIncomeRecord(owner, source string, amount int64, date valueobject.CalendarDate) *IncomeRecord {
	return &IncomeRecord{
		ID:        uuid.New(),
		Owner:     owner,
		Source:    source,
		Amount:    amount,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}
