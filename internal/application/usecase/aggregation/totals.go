// Package aggregation contains the ledger aggregation use cases.
package aggregation

import (
	"context"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
)

// TotalIncomeUseCase sums the amounts of all income records of an owner.
type TotalIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewTotalIncomeUseCase creates a new TotalIncomeUseCase instance.
func NewTotalIncomeUseCase(incomeRepo adapter.IncomeRepository) *TotalIncomeUseCase {
	return &TotalIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute returns the owner's all-time income total. The sum over an empty
// record set is 0.
func (uc *TotalIncomeUseCase) Execute(ctx context.Context, owner string) (int64, error) {
	records, err := uc.incomeRepo.FindByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to load income records: %w", err)
	}

	var total int64
	for _, rec := range records {
		total += rec.Amount
	}
	return total, nil
}

// TotalExpenseUseCase sums the amounts of all expense records of an owner.
type TotalExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewTotalExpenseUseCase creates a new TotalExpenseUseCase instance.
func NewTotalExpenseUseCase(expenseRepo adapter.ExpenseRepository) *TotalExpenseUseCase {
	return &TotalExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute returns the owner's all-time expense total.
func (uc *TotalExpenseUseCase) Execute(ctx context.Context, owner string) (int64, error) {
	records, err := uc.expenseRepo.FindByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("failed to load expense records: %w", err)
	}

	var total int64
	for _, rec := range records {
		total += rec.Amount
	}
	return total, nil
}
