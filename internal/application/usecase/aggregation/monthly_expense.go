// Package aggregation contains the ledger aggregation use cases.
package aggregation

import (
	"context"
	"fmt"
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
)

// MonthlyExpenseInput selects the aggregation window. A zero Year or Month
// defaults to the current calendar year/month.
type MonthlyExpenseInput struct {
	Owner string
	Year  int
	Month time.Month
}

// MonthlyExpenseOutput carries the total together with the period it was
// computed for, so callers echo the resolved defaults rather than guessing.
type MonthlyExpenseOutput struct {
	Year  int
	Month time.Month
	Total int64
}

// MonthlyExpenseUseCase sums expense amounts whose normalized date falls in
// the target year and month. A stored record whose date cannot be normalized
// aborts the aggregation; silently skipping it would understate the total
// without signal.
type MonthlyExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewMonthlyExpenseUseCase creates a new MonthlyExpenseUseCase instance.
func NewMonthlyExpenseUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *MonthlyExpenseUseCase {
	return &MonthlyExpenseUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute returns the owner's expense total for the selected month.
func (uc *MonthlyExpenseUseCase) Execute(ctx context.Context, input MonthlyExpenseInput) (*MonthlyExpenseOutput, error) {
	now := uc.clock.Now()
	year, month := input.Year, input.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	records, err := uc.expenseRepo.FindByOwner(ctx, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense records: %w", err)
	}

	out := &MonthlyExpenseOutput{Year: year, Month: month}
	for _, rec := range records {
		if rec.Date.InMonth(year, month) {
			out.Total += rec.Amount
		}
	}
	return out, nil
}
