// Package goal contains spending-limit use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

// SetGoalsInput carries the partial limit update. Each limit is tri-state:
// a nil pointer leaves the stored limit untouched, an explicit zero clears
// it, and a positive value sets it.
type SetGoalsInput struct {
	Owner        string
	MonthlyLimit *int64
	YearlyLimit  *int64
}

// SetGoalsOutput represents the output of a goal update.
type SetGoalsOutput struct {
	Goal *entity.Goal
}

// SetGoalsUseCase handles the merge-style goal upsert.
type SetGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewSetGoalsUseCase creates a new SetGoalsUseCase instance.
func NewSetGoalsUseCase(goalRepo adapter.GoalRepository) *SetGoalsUseCase {
	return &SetGoalsUseCase{goalRepo: goalRepo}
}

// Execute merges the provided limits into the owner's stored goal, creating
// it if absent.
func (uc *SetGoalsUseCase) Execute(ctx context.Context, input SetGoalsInput) (*SetGoalsOutput, error) {
	if input.MonthlyLimit == nil && input.YearlyLimit == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNoGoalFieldsProvided,
			"at least one of monthly or yearly limit must be provided",
			domainerror.ErrNoGoalFieldsProvided,
		)
	}

	if input.MonthlyLimit != nil && *input.MonthlyLimit < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNegativeGoalLimit,
			"monthly limit must not be negative",
			domainerror.ErrNegativeGoalLimit,
		)
	}
	if input.YearlyLimit != nil && *input.YearlyLimit < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNegativeGoalLimit,
			"yearly limit must not be negative",
			domainerror.ErrNegativeGoalLimit,
		)
	}

	goal, err := uc.goalRepo.Upsert(ctx, input.Owner, adapter.GoalUpdate{
		MonthlyLimit: input.MonthlyLimit,
		YearlyLimit:  input.YearlyLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert goal: %w", err)
	}

	return &SetGoalsOutput{Goal: goal}, nil
}
