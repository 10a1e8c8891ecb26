// Package aggregation contains the ledger aggregation use cases.
package aggregation

import (
	"context"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
)

// YearlyExpenseInput selects the aggregation year. A zero Year defaults to
// the current calendar year.
type YearlyExpenseInput struct {
	Owner string
	Year  int
}

// YearlyExpenseOutput carries the total together with the resolved year.
type YearlyExpenseOutput struct {
	Year  int
	Total int64
}

// YearlyExpenseUseCase sums expense amounts whose normalized date falls in
// the target year.
type YearlyExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewYearlyExpenseUseCase creates a new YearlyExpenseUseCase instance.
func NewYearlyExpenseUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *YearlyExpenseUseCase {
	return &YearlyExpenseUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute returns the owner's expense total for the selected year.
func (uc *YearlyExpenseUseCase) Execute(ctx context.Context, input YearlyExpenseInput) (*YearlyExpenseOutput, error) {
	year := input.Year
	if year == 0 {
		year = uc.clock.Now().Year()
	}

	records, err := uc.expenseRepo.FindByOwner(ctx, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense records: %w", err)
	}

	out := &YearlyExpenseOutput{Year: year}
	for _, rec := range records {
		if rec.Date.InYear(year) {
			out.Total += rec.Amount
		}
	}
	return out, nil
}
