// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
)

// SavingRepository defines the interface for saving record persistence.
// Savings are write-only in the current scope: create and list only.
type SavingRepository interface {
	// Create appends a saving record.
	Create(ctx context.Context, record *entity.SavingRecord) error

	// FindByOwner retrieves all saving records for an owner.
	FindByOwner(ctx context.Context, owner string) ([]*entity.SavingRecord, error)
}
