// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// IncomeRepository defines the interface for income record persistence.
type IncomeRepository interface {
	// Create appends an income record. Field-identical duplicates are legal
	// and each counts independently in aggregates.
	Create(ctx context.Context, record *entity.IncomeRecord) error

	// FindByOwner retrieves all income records for an owner. The order of the
	// returned records is not guaranteed.
	FindByOwner(ctx context.Context, owner string) ([]*entity.IncomeRecord, error)

	// DeleteOneByFields removes at most one record matching the full
	// attribute set and reports whether a record was removed.
	DeleteOneByFields(ctx context.Context, owner, source string, amount int64, date valueobject.CalendarDate) (bool, error)
}
