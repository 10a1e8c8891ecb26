// Package ledger contains income, expense and saving record use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
)

// ListIncomeUseCase returns all income records for an owner. The order of
// the returned records is not part of the contract; consumers sort if they
// need to.
type ListIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(incomeRepo adapter.IncomeRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute lists the owner's income records.
func (uc *ListIncomeUseCase) Execute(ctx context.Context, owner string) ([]*entity.IncomeRecord, error) {
	records, err := uc.incomeRepo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list income records: %w", err)
	}
	return records, nil
}

// ListExpensesUseCase returns all expense records for an owner.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the owner's expense records.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, owner string) ([]*entity.ExpenseRecord, error) {
	records, err := uc.expenseRepo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense records: %w", err)
	}
	return records, nil
}

// ListSavingsUseCase returns all saving records for an owner.
type ListSavingsUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewListSavingsUseCase creates a new ListSavingsUseCase instance.
func NewListSavingsUseCase(savingRepo adapter.SavingRepository) *ListSavingsUseCase {
	return &ListSavingsUseCase{savingRepo: savingRepo}
}

// Execute lists the owner's saving records.
func (uc *ListSavingsUseCase) Execute(ctx context.Context, owner string) ([]*entity.SavingRecord, error) {
	records, err := uc.savingRepo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list saving records: %w", err)
	}
	return records, nil
}
