// Package goal contains spending-limit use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

// GetGoalsOutput carries the stored goal, or a nil Goal when none exists.
type GetGoalsOutput struct {
	Goal *entity.Goal
}

// GetGoalsUseCase retrieves the owner's stored limits.
type GetGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalsUseCase creates a new GetGoalsUseCase instance.
func NewGetGoalsUseCase(goalRepo adapter.GoalRepository) *GetGoalsUseCase {
	return &GetGoalsUseCase{goalRepo: goalRepo}
}

// Execute returns the owner's goal. An absent goal is not an error.
func (uc *GetGoalsUseCase) Execute(ctx context.Context, owner string) (*GetGoalsOutput, error) {
	goal, err := uc.goalRepo.FindByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return &GetGoalsOutput{}, nil
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}
	return &GetGoalsOutput{Goal: goal}, nil
}
