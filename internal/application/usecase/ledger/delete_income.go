// Package ledger contains income, expense and saving record use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// DeleteIncomeInput identifies an income record by its full attribute set.
type DeleteIncomeInput struct {
	Owner  string
	Source string
	Amount int64
	Date   string
}

// DeleteIncomeOutput reports whether a record was removed. A request
// matching zero records is not an error; it is reported as zero-effect.
type DeleteIncomeOutput struct {
	Deleted bool
}

// DeleteIncomeUseCase handles income record deletion by exact match.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute removes at most one record matching the input fields. If several
// field-identical records exist, exactly one of them is removed.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	date, err := valueobject.ParseCalendarDate(input.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeUnrecognizedDateFormat,
			"income date is not in an accepted format",
			err,
		)
	}

	deleted, err := uc.incomeRepo.DeleteOneByFields(ctx, input.Owner, input.Source, input.Amount, date)
	if err != nil {
		return nil, fmt.Errorf("failed to delete income record: %w", err)
	}

	return &DeleteIncomeOutput{Deleted: deleted}, nil
}
