package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

type memIncomeRepo struct {
	records []*entity.IncomeRecord
}

func (r *memIncomeRepo) Create(_ context.Context, record *entity.IncomeRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *memIncomeRepo) FindByOwner(_ context.Context, owner string) ([]*entity.IncomeRecord, error) {
	var out []*entity.IncomeRecord
	for _, rec := range r.records {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memIncomeRepo) DeleteOneByFields(_ context.Context, owner, source string, amount int64, date valueobject.CalendarDate) (bool, error) {
	for i, rec := range r.records {
		if rec.Owner == owner && rec.Source == source && rec.Amount == amount && rec.Date == date {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memExpenseRepo struct {
	records []*entity.ExpenseRecord
}

func (r *memExpenseRepo) Create(_ context.Context, record *entity.ExpenseRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *memExpenseRepo) FindByOwner(_ context.Context, owner string) ([]*entity.ExpenseRecord, error) {
	var out []*entity.ExpenseRecord
	for _, rec := range r.records {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memExpenseRepo) DeleteOneByFields(_ context.Context, owner, category string, amount int64, date valueobject.CalendarDate) (bool, error) {
	for i, rec := range r.records {
		if rec.Owner == owner && rec.Category == category && rec.Amount == amount && rec.Date == date {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memSavingRepo struct {
	records []*entity.SavingRecord
}

func (r *memSavingRepo) Create(_ context.Context, record *entity.SavingRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *memSavingRepo) FindByOwner(_ context.Context, owner string) ([]*entity.SavingRecord, error) {
	var out []*entity.SavingRecord
	for _, rec := range r.records {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestAddIncomeThenList(t *testing.T) {
	repo := &memIncomeRepo{}
	add := NewAddIncomeUseCase(repo)
	list := NewListIncomeUseCase(repo)
	ctx := context.Background()

	out, err := add.Execute(ctx, AddIncomeInput{
		Owner:  "alice",
		Source: "salary",
		Amount: 1500,
		Date:   "05-03-2024",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Record.Source != "salary" || out.Record.Amount != 1500 {
		t.Errorf("unexpected record: %+v", out.Record)
	}

	records, err := list.Execute(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(records))
	}
	if records[0].Date.String() != "05-03-2024" {
		t.Errorf("expected canonical date 05-03-2024, got %s", records[0].Date.String())
	}

	other, err := list.Execute(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no cross-user visibility, got %d records", len(other))
	}
}

func TestAddIncomeValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   AddIncomeInput
		wantErr error
	}{
		{
			name:    "empty source",
			input:   AddIncomeInput{Owner: "alice", Source: "", Amount: 100, Date: "05-03-2024"},
			wantErr: domainerror.ErrEmptyIncomeSource,
		},
		{
			name:    "negative amount",
			input:   AddIncomeInput{Owner: "alice", Source: "salary", Amount: -1, Date: "05-03-2024"},
			wantErr: domainerror.ErrNegativeAmount,
		},
		{
			name:    "unparseable date",
			input:   AddIncomeInput{Owner: "alice", Source: "salary", Amount: 100, Date: "2024/03/05"},
			wantErr: domainerror.ErrUnrecognizedDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memIncomeRepo{}
			uc := NewAddIncomeUseCase(repo)

			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if len(repo.records) != 0 {
				t.Error("no partial write expected on validation failure")
			}
		})
	}
}

func TestAddExpenseValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   AddExpenseInput
		wantErr error
	}{
		{
			name:    "empty category",
			input:   AddExpenseInput{Owner: "alice", Category: "", Amount: 100, Date: "05-03-2024"},
			wantErr: domainerror.ErrEmptyExpenseCategory,
		},
		{
			name:    "negative amount",
			input:   AddExpenseInput{Owner: "alice", Category: "food", Amount: -5, Date: "05-03-2024"},
			wantErr: domainerror.ErrNegativeAmount,
		},
		{
			name:    "unparseable date",
			input:   AddExpenseInput{Owner: "alice", Category: "food", Amount: 100, Date: "not-a-date"},
			wantErr: domainerror.ErrUnrecognizedDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memExpenseRepo{}
			uc := NewAddExpenseUseCase(repo)

			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if len(repo.records) != 0 {
				t.Error("no partial write expected on validation failure")
			}
		})
	}
}

func TestAddExpenseEmptyDescriptionAllowed(t *testing.T) {
	repo := &memExpenseRepo{}
	uc := NewAddExpenseUseCase(repo)

	out, err := uc.Execute(context.Background(), AddExpenseInput{
		Owner:    "alice",
		Category: "food",
		Amount:   0,
		Date:     "05-03-24",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Record.Description != "" {
		t.Errorf("expected empty description, got %q", out.Record.Description)
	}
	if out.Record.Date.Year != 2024 {
		t.Errorf("two-digit year should resolve to 2024, got %d", out.Record.Date.Year)
	}
}

func TestDeleteExpenseRemovesExactlyOne(t *testing.T) {
	repo := &memExpenseRepo{}
	add := NewAddExpenseUseCase(repo)
	del := NewDeleteExpenseUseCase(repo)
	ctx := context.Background()

	// Two field-identical records plus one bystander.
	for i := 0; i < 2; i++ {
		if _, err := add.Execute(ctx, AddExpenseInput{Owner: "alice", Category: "food", Amount: 100, Date: "05-03-2024"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := add.Execute(ctx, AddExpenseInput{Owner: "alice", Category: "rent", Amount: 900, Date: "01-03-2024"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := del.Execute(ctx, DeleteExpenseInput{Owner: "alice", Category: "food", Amount: 100, Date: "05-03-2024"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Deleted {
		t.Error("expected a record to be deleted")
	}

	remaining := 0
	for _, rec := range repo.records {
		if rec.Category == "food" {
			remaining++
		}
	}
	if remaining != 1 {
		t.Errorf("expected exactly one duplicate to remain, got %d", remaining)
	}
	if len(repo.records) != 2 {
		t.Errorf("bystander record must be untouched, total %d", len(repo.records))
	}
}

func TestDeleteIncomeZeroMatchIsNoOp(t *testing.T) {
	repo := &memIncomeRepo{}
	del := NewDeleteIncomeUseCase(repo)

	out, err := del.Execute(context.Background(), DeleteIncomeInput{
		Owner:  "alice",
		Source: "salary",
		Amount: 100,
		Date:   "05-03-2024",
	})
	if err != nil {
		t.Fatalf("zero-match delete must not error, got %v", err)
	}
	if out.Deleted {
		t.Error("expected Deleted to be false for zero matches")
	}
}

func TestAddSavingThenList(t *testing.T) {
	repo := &memSavingRepo{}
	add := NewAddSavingUseCase(repo)
	list := NewListSavingsUseCase(repo)
	ctx := context.Background()

	if _, err := add.Execute(ctx, AddSavingInput{Owner: "alice", Title: "emergency fund", Amount: 300, Date: "10-01-2024"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := add.Execute(ctx, AddSavingInput{Owner: "alice", Title: "", Amount: 300, Date: "10-01-2024"}); !errors.Is(err, domainerror.ErrEmptySavingTitle) {
		t.Errorf("expected ErrEmptySavingTitle, got %v", err)
	}

	records, err := list.Execute(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected one saving record, got %d", len(records))
	}
}
