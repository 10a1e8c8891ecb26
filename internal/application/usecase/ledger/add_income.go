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

// AddIncomeInput represents the input for income creation.
type AddIncomeInput struct {
	Owner  string
	Source string
	Amount int64
	Date   string
}

// AddIncomeOutput represents the output of income creation.
type AddIncomeOutput struct {
	Record *entity.IncomeRecord
}

// AddIncomeUseCase handles income record creation.
type AddIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(incomeRepo adapter.IncomeRepository) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute validates the input, normalizes the date and appends the record.
// No partial write occurs on validation failure.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	if input.Source == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyIncomeSource,
			"income source is required",
			domainerror.ErrEmptyIncomeSource,
		)
	}

	if input.Amount < 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"income amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	date, err := valueobject.ParseCalendarDate(input.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeUnrecognizedDateFormat,
			"income date is not in an accepted format",
			err,
		)
	}

	record := entity.NewIncomeRecord(input.Owner, input.Source, input.Amount, date)

	if err := uc.incomeRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create income record: %w", err)
	}

	return &AddIncomeOutput{Record: record}, nil
}
