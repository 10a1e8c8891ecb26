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

// AddSavingInput represents the input for saving creation.
type AddSavingInput struct {
	Owner  string
	Title  string
	Amount int64
	Date   string
}

// AddSavingOutput represents the output of saving creation.
type AddSavingOutput struct {
	Record *entity.SavingRecord
}

// AddSavingUseCase handles saving record creation.
type AddSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewAddSavingUseCase creates a new AddSavingUseCase instance.
func NewAddSavingUseCase(savingRepo adapter.SavingRepository) *AddSavingUseCase {
	return &AddSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute validates the input, normalizes the date and appends the record.
func (uc *AddSavingUseCase) Execute(ctx context.Context, input AddSavingInput) (*AddSavingOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptySavingTitle,
			"saving title is required",
			domainerror.ErrEmptySavingTitle,
		)
	}

	if input.Amount < 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"saving amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	date, err := valueobject.ParseCalendarDate(input.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeUnrecognizedDateFormat,
			"saving date is not in an accepted format",
			err,
		)
	}

	record := entity.NewSavingRecord(input.Owner, input.Title, input.Amount, date)

	if err := uc.savingRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create saving record: %w", err)
	}

	return &AddSavingOutput{Record: record}, nil
}
