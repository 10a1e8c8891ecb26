// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
)

// GoalUpdate is a partial goal update. A nil field leaves the stored limit
// untouched; a pointer to zero clears the limit; a positive value sets it.
type GoalUpdate struct {
	MonthlyLimit *int64
	YearlyLimit  *int64
}

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Upsert merges only the provided fields into the owner's stored goal,
	// creating it if absent, and returns the resulting goal.
	Upsert(ctx context.Context, owner string, update GoalUpdate) (*entity.Goal, error)

	// FindByOwner retrieves the goal for an owner. Returns ErrGoalNotFound
	// when no goal is stored.
	FindByOwner(ctx context.Context, owner string) (*entity.Goal, error)
}
