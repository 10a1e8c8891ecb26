package aggregation

import (
	"context"
	"testing"
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

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

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func mustDate(t *testing.T, raw string) valueobject.CalendarDate {
	t.Helper()
	d, err := valueobject.ParseCalendarDate(raw)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", raw, err)
	}
	return d
}

func expense(t *testing.T, owner, category string, amount int64, raw string) *entity.ExpenseRecord {
	t.Helper()
	return entity.NewExpenseRecord(owner, category, amount, mustDate(t, raw), "")
}

// fixtureRepo holds two March-2024 expenses (100, 250), an April-2024
// expense (999) and a December-2023 expense (500).
func fixtureRepo(t *testing.T) *memExpenseRepo {
	t.Helper()
	return &memExpenseRepo{records: []*entity.ExpenseRecord{
		expense(t, "alice", "food", 100, "05-03-2024"),
		expense(t, "alice", "travel", 250, "20-03-2024"),
		expense(t, "alice", "rent", 999, "01-04-2024"),
		expense(t, "alice", "gifts", 500, "24-12-2023"),
	}}
}

func TestTotalsMatchLists(t *testing.T) {
	incomeRepo := &memIncomeRepo{records: []*entity.IncomeRecord{
		entity.NewIncomeRecord("alice", "salary", 1500, mustDate(t, "01-03-2024")),
		entity.NewIncomeRecord("alice", "bonus", 200, mustDate(t, "15-03-2024")),
	}}
	expenseRepo := fixtureRepo(t)

	totalIncome, err := NewTotalIncomeUseCase(incomeRepo).Execute(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totalIncome != 1700 {
		t.Errorf("expected income total 1700, got %d", totalIncome)
	}

	totalExpense, err := NewTotalExpenseUseCase(expenseRepo).Execute(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totalExpense != 1849 {
		t.Errorf("expected expense total 1849, got %d", totalExpense)
	}
}

func TestTotalsEmptySetIsZero(t *testing.T) {
	totalIncome, err := NewTotalIncomeUseCase(&memIncomeRepo{}).Execute(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totalIncome != 0 {
		t.Errorf("expected 0 for empty set, got %d", totalIncome)
	}

	totalExpense, err := NewTotalExpenseUseCase(&memExpenseRepo{}).Execute(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totalExpense != 0 {
		t.Errorf("expected 0 for empty set, got %d", totalExpense)
	}
}

func TestMonthlyExpense(t *testing.T) {
	repo := fixtureRepo(t)
	clock := fixedClock{now: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)}
	uc := NewMonthlyExpenseUseCase(repo, clock)

	t.Run("explicit march 2024", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), MonthlyExpenseInput{Owner: "alice", Year: 2024, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 350 {
			t.Errorf("expected 350, got %d", out.Total)
		}
	})

	t.Run("defaults to current month", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), MonthlyExpenseInput{Owner: "alice"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 350 {
			t.Errorf("expected 350 for the clock's month, got %d", out.Total)
		}
		if out.Year != 2024 || out.Month != time.March {
			t.Errorf("resolved period must come from the clock, got %d-%d", out.Year, out.Month)
		}
	})

	t.Run("other month excluded", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), MonthlyExpenseInput{Owner: "alice", Year: 2024, Month: time.April})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 999 {
			t.Errorf("expected 999, got %d", out.Total)
		}
		if out.Year != 2024 || out.Month != time.April {
			t.Errorf("explicit period must be echoed back, got %d-%d", out.Year, out.Month)
		}
	})
}

func TestYearlyExpense(t *testing.T) {
	repo := fixtureRepo(t)
	clock := fixedClock{now: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)}
	uc := NewYearlyExpenseUseCase(repo, clock)

	out, err := uc.Execute(context.Background(), YearlyExpenseInput{Owner: "alice", Year: 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 1349 {
		t.Errorf("expected 1349 excluding the 2023 entry, got %d", out.Total)
	}

	out, err = uc.Execute(context.Background(), YearlyExpenseInput{Owner: "alice", Year: 2023})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 500 {
		t.Errorf("expected 500 for 2023, got %d", out.Total)
	}

	out, err = uc.Execute(context.Background(), YearlyExpenseInput{Owner: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Year != 2024 || out.Total != 1349 {
		t.Errorf("default year must come from the clock, got year %d total %d", out.Year, out.Total)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	repo := fixtureRepo(t)
	repo.records = append(repo.records,
		expense(t, "alice", "food", 50, "06-03-2024"),
		expense(t, "alice", "Food", 70, "07-03-2024"), // case sensitive: distinct key
	)
	uc := NewCategoryBreakdownUseCase(repo)

	out, err := uc.Execute(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Totals["food"] != 150 {
		t.Errorf("expected food=150, got %d", out.Totals["food"])
	}
	if out.Totals["Food"] != 70 {
		t.Errorf("expected Food=70 as a distinct category, got %d", out.Totals["Food"])
	}

	var sum int64
	for _, amount := range out.Totals {
		sum += amount
	}
	if sum != out.TotalSpent {
		t.Errorf("breakdown sum %d must equal total %d", sum, out.TotalSpent)
	}

	totalExpense, err := NewTotalExpenseUseCase(repo).Execute(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != totalExpense {
		t.Errorf("breakdown sum %d must equal the expense total %d", sum, totalExpense)
	}

	var pctSum float64
	for _, item := range out.Items {
		pctSum += item.Percentage
	}
	if pctSum < 99.5 || pctSum > 100.5 {
		t.Errorf("percentages should sum to ~100, got %.2f", pctSum)
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	out, err := NewCategoryBreakdownUseCase(&memExpenseRepo{}).Execute(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Totals) != 0 || out.TotalSpent != 0 {
		t.Errorf("expected empty breakdown, got %+v", out)
	}
}

func TestMonthlySeries(t *testing.T) {
	repo := fixtureRepo(t)
	clock := fixedClock{now: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)}
	uc := NewMonthlySeriesUseCase(repo, clock)

	out, err := uc.Execute(context.Background(), MonthlySeriesInput{Owner: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Year != 2024 {
		t.Errorf("expected default year 2024, got %d", out.Year)
	}
	if out.Totals[2] != 350 {
		t.Errorf("expected March total 350, got %d", out.Totals[2])
	}
	if out.Totals[3] != 999 {
		t.Errorf("expected April total 999, got %d", out.Totals[3])
	}

	var sum int64
	for _, v := range out.Totals {
		sum += v
	}
	if sum != 1349 {
		t.Errorf("series must sum to the yearly total 1349, got %d", sum)
	}
}
