// Package goal contains spending-limit use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/aggregation"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

// EvaluateGoalsOutput carries zero, one or two breach events. Both checks
// are independent; a single expense addition may fire both.
type EvaluateGoalsOutput struct {
	Breaches []entity.Breach
}

// EvaluateGoalsUseCase compares the owner's current aggregate totals against
// the stored limits. The evaluation is read-only: it never mutates state and
// never rejects a record.
type EvaluateGoalsUseCase struct {
	goalRepo       adapter.GoalRepository
	monthlyExpense *aggregation.MonthlyExpenseUseCase
	yearlyExpense  *aggregation.YearlyExpenseUseCase
}

// NewEvaluateGoalsUseCase creates a new EvaluateGoalsUseCase instance.
func NewEvaluateGoalsUseCase(
	goalRepo adapter.GoalRepository,
	monthlyExpense *aggregation.MonthlyExpenseUseCase,
	yearlyExpense *aggregation.YearlyExpenseUseCase,
) *EvaluateGoalsUseCase {
	return &EvaluateGoalsUseCase{
		goalRepo:       goalRepo,
		monthlyExpense: monthlyExpense,
		yearlyExpense:  yearlyExpense,
	}
}

// Execute evaluates the current month and year totals against the stored
// limits. A total strictly exceeding its limit produces a breach carrying
// the overage; a total equal to the limit does not.
func (uc *EvaluateGoalsUseCase) Execute(ctx context.Context, owner string) (*EvaluateGoalsOutput, error) {
	goal, err := uc.goalRepo.FindByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return &EvaluateGoalsOutput{}, nil
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	out := &EvaluateGoalsOutput{}

	if goal.MonthlyLimit != nil {
		monthly, err := uc.monthlyExpense.Execute(ctx, aggregation.MonthlyExpenseInput{Owner: owner})
		if err != nil {
			return nil, fmt.Errorf("failed to compute monthly expense: %w", err)
		}
		if monthly.Total > *goal.MonthlyLimit {
			out.Breaches = append(out.Breaches, entity.Breach{
				Period:  entity.GoalPeriodMonthly,
				Limit:   *goal.MonthlyLimit,
				Total:   monthly.Total,
				Overage: monthly.Total - *goal.MonthlyLimit,
			})
		}
	}

	if goal.YearlyLimit != nil {
		yearly, err := uc.yearlyExpense.Execute(ctx, aggregation.YearlyExpenseInput{Owner: owner})
		if err != nil {
			return nil, fmt.Errorf("failed to compute yearly expense: %w", err)
		}
		if yearly.Total > *goal.YearlyLimit {
			out.Breaches = append(out.Breaches, entity.Breach{
				Period:  entity.GoalPeriodYearly,
				Limit:   *goal.YearlyLimit,
				Total:   yearly.Total,
				Overage: yearly.Total - *goal.YearlyLimit,
			})
		}
	}

	return out, nil
}
