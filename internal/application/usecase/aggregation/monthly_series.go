// Package aggregation contains the ledger aggregation use cases.
package aggregation

import (
	"context"
	"fmt"
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
)

// MonthlySeriesInput selects the year for the per-month series. A zero Year
// defaults to the current calendar year.
type MonthlySeriesInput struct {
	Owner string
	Year  int
}

// MonthlySeriesOutput carries twelve monthly expense totals, January first.
type MonthlySeriesOutput struct {
	Year   int
	Totals [12]int64
}

// MonthlySeriesUseCase computes the year's per-month expense totals, which
// the presentation layer renders as the yearly bar chart.
type MonthlySeriesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewMonthlySeriesUseCase creates a new MonthlySeriesUseCase instance.
func NewMonthlySeriesUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *MonthlySeriesUseCase {
	return &MonthlySeriesUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute returns the monthly expense totals for the selected year.
func (uc *MonthlySeriesUseCase) Execute(ctx context.Context, input MonthlySeriesInput) (*MonthlySeriesOutput, error) {
	year := input.Year
	if year == 0 {
		year = uc.clock.Now().Year()
	}

	records, err := uc.expenseRepo.FindByOwner(ctx, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense records: %w", err)
	}

	out := &MonthlySeriesOutput{Year: year}
	for _, rec := range records {
		if rec.Date.InYear(year) {
			out.Totals[int(rec.Date.Month)-int(time.January)] += rec.Amount
		}
	}
	return out, nil
}
