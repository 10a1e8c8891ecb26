// Package aggregation contains the ledger aggregation use cases.
package aggregation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
)

// CategoryBreakdownItem is one category in the breakdown. Percentage is the
// category's share of the expense total, rounded to two decimal places.
type CategoryBreakdownItem struct {
	Category   string
	Amount     int64
	Percentage float64
}

// CategoryBreakdownOutput maps each distinct category string (case
// sensitive, exact match) to its summed amount. Only the key-to-sum
// associations are contractually guaranteed; the item order is whatever the
// record scan produced.
type CategoryBreakdownOutput struct {
	Totals     map[string]int64
	Items      []CategoryBreakdownItem
	TotalSpent int64
}

// CategoryBreakdownUseCase accumulates expense amounts per category.
type CategoryBreakdownUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCategoryBreakdownUseCase creates a new CategoryBreakdownUseCase instance.
func NewCategoryBreakdownUseCase(expenseRepo adapter.ExpenseRepository) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{expenseRepo: expenseRepo}
}

// Execute builds the per-category expense breakdown. Summing the breakdown
// across all categories always equals the owner's expense total.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context, owner string) (*CategoryBreakdownOutput, error) {
	records, err := uc.expenseRepo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense records: %w", err)
	}

	totals := make(map[string]int64)
	var order []string
	var totalSpent int64
	for _, rec := range records {
		if _, seen := totals[rec.Category]; !seen {
			order = append(order, rec.Category)
		}
		totals[rec.Category] += rec.Amount
		totalSpent += rec.Amount
	}

	items := make([]CategoryBreakdownItem, 0, len(order))
	for _, category := range order {
		var percentage float64
		if totalSpent != 0 {
			pct := decimal.NewFromInt(totals[category]).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(totalSpent))
			percentage, _ = pct.Round(2).Float64()
		}
		items = append(items, CategoryBreakdownItem{
			Category:   category,
			Amount:     totals[category],
			Percentage: percentage,
		})
	}

	return &CategoryBreakdownOutput{
		Totals:     totals,
		Items:      items,
		TotalSpent: totalSpent,
	}, nil
}
