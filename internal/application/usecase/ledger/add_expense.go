// Package ledger contains income, expense and saving record use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// AddExpenseInput represents the input for expense creation. Description is
// unconstrained and may be empty.
type AddExpenseInput struct {
	Owner       string
	Category    string
	Amount      int64
	Date        string
	Description string
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Record *entity.ExpenseRecord
}

// AddExpenseUseCase handles expense record creation.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute validates the input, normalizes the date and appends the record.
// Goal limits never reject an expense; breach evaluation is a separate,
// read-only operation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if input.Category == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyExpenseCategory,
			"expense category is required",
			domainerror.ErrEmptyExpenseCategory,
		)
	}

	if input.Amount < 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"expense amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	date, err := valueobject.ParseCalendarDate(input.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeUnrecognizedDateFormat,
			"expense date is not in an accepted format",
			err,
		)
	}

	record := entity.NewExpenseRecord(input.Owner, input.Category, input.Amount, date, input.Description)

	if err := uc.expenseRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create expense record: %w", err)
	}

	return &AddExpenseOutput{Record: record}, nil
}
