// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// ExpenseRepository defines the interface for expense record persistence.
type ExpenseRepository interface {
	// Create appends an expense record. Field-identical duplicates are legal
	// and each counts independently in aggregates.
	Create(ctx context.Context, record *entity.ExpenseRecord) error

	// FindByOwner retrieves all expense records for an owner. The order of
	// the returned records is not guaranteed; aggregation must not depend
	// on it.
	FindByOwner(ctx context.Context, owner string) ([]*entity.ExpenseRecord, error)

	// DeleteOneByFields removes at most one record matching on
	// (owner, category, amount, date) and reports whether a record was
	// removed. The description does not participate in the match.
	DeleteOneByFields(ctx context.Context, owner, category string, amount int64, date valueobject.CalendarDate) (bool, error)
}
