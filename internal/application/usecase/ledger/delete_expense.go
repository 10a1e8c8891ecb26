// Package ledger contains income, expense and saving record use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// DeleteExpenseInput identifies an expense record by (owner, category,
// amount, date). The description is not part of the match.
type DeleteExpenseInput struct {
	Owner    string
	Category string
	Amount   int64
	Date     string
}

// DeleteExpenseOutput reports whether a record was removed.
type DeleteExpenseOutput struct {
	Deleted bool
}

// DeleteExpenseUseCase handles expense record deletion by exact match.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute removes at most one record matching the input fields.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	date, err := valueobject.ParseCalendarDate(input.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeUnrecognizedDateFormat,
			"expense date is not in an accepted format",
			err,
		)
	}

	deleted, err := uc.expenseRepo.DeleteOneByFields(ctx, input.Owner, input.Category, input.Amount, date)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expense record: %w", err)
	}

	return &DeleteExpenseOutput{Deleted: deleted}, nil
}
