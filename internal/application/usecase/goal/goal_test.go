package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/aggregation"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

type memGoalRepo struct {
	goals map[string]*entity.Goal
}

func newMemGoalRepo() *memGoalRepo {
	return &memGoalRepo{goals: make(map[string]*entity.Goal)}
}

func (r *memGoalRepo) Upsert(_ context.Context, owner string, update adapter.GoalUpdate) (*entity.Goal, error) {
	goal, ok := r.goals[owner]
	if !ok {
		goal = entity.NewGoal(owner, nil, nil)
		r.goals[owner] = goal
	}
	if update.MonthlyLimit != nil {
		if *update.MonthlyLimit == 0 {
			goal.MonthlyLimit = nil
		} else {
			v := *update.MonthlyLimit
			goal.MonthlyLimit = &v
		}
	}
	if update.YearlyLimit != nil {
		if *update.YearlyLimit == 0 {
			goal.YearlyLimit = nil
		} else {
			v := *update.YearlyLimit
			goal.YearlyLimit = &v
		}
	}
	return goal, nil
}

func (r *memGoalRepo) FindByOwner(_ context.Context, owner string) (*entity.Goal, error) {
	goal, ok := r.goals[owner]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return goal, nil
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
	return false, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func int64Ptr(v int64) *int64 { return &v }

func mustDate(t *testing.T, raw string) valueobject.CalendarDate {
	t.Helper()
	d, err := valueobject.ParseCalendarDate(raw)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", raw, err)
	}
	return d
}

func newEvaluator(goalRepo adapter.GoalRepository, expenseRepo adapter.ExpenseRepository, now time.Time) *EvaluateGoalsUseCase {
	clock := fixedClock{now: now}
	return NewEvaluateGoalsUseCase(
		goalRepo,
		aggregation.NewMonthlyExpenseUseCase(expenseRepo, clock),
		aggregation.NewYearlyExpenseUseCase(expenseRepo, clock),
	)
}

func TestSetGoalsTriState(t *testing.T) {
	repo := newMemGoalRepo()
	uc := NewSetGoalsUseCase(repo)
	ctx := context.Background()

	t.Run("set monthly only", func(t *testing.T) {
		out, err := uc.Execute(ctx, SetGoalsInput{Owner: "alice", MonthlyLimit: int64Ptr(1000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.MonthlyLimit == nil || *out.Goal.MonthlyLimit != 1000 {
			t.Errorf("expected monthly limit 1000, got %+v", out.Goal.MonthlyLimit)
		}
		if out.Goal.YearlyLimit != nil {
			t.Error("yearly limit must stay unset")
		}
	})

	t.Run("set yearly leaves monthly untouched", func(t *testing.T) {
		out, err := uc.Execute(ctx, SetGoalsInput{Owner: "alice", YearlyLimit: int64Ptr(9000)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.MonthlyLimit == nil || *out.Goal.MonthlyLimit != 1000 {
			t.Error("monthly limit must survive a yearly-only update")
		}
		if out.Goal.YearlyLimit == nil || *out.Goal.YearlyLimit != 9000 {
			t.Errorf("expected yearly limit 9000, got %+v", out.Goal.YearlyLimit)
		}
	})

	t.Run("explicit zero clears the limit", func(t *testing.T) {
		out, err := uc.Execute(ctx, SetGoalsInput{Owner: "alice", MonthlyLimit: int64Ptr(0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.MonthlyLimit != nil {
			t.Error("explicit zero must clear the monthly limit")
		}
		if out.Goal.YearlyLimit == nil || *out.Goal.YearlyLimit != 9000 {
			t.Error("yearly limit must be untouched by clearing monthly")
		}
	})

	t.Run("no fields provided", func(t *testing.T) {
		_, err := uc.Execute(ctx, SetGoalsInput{Owner: "alice"})
		if !errors.Is(err, domainerror.ErrNoGoalFieldsProvided) {
			t.Errorf("expected ErrNoGoalFieldsProvided, got %v", err)
		}
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, SetGoalsInput{Owner: "alice", MonthlyLimit: int64Ptr(-1)})
		if !errors.Is(err, domainerror.ErrNegativeGoalLimit) {
			t.Errorf("expected ErrNegativeGoalLimit, got %v", err)
		}
	})
}

func TestGetGoalsAbsentIsNotAnError(t *testing.T) {
	uc := NewGetGoalsUseCase(newMemGoalRepo())

	out, err := uc.Execute(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Goal != nil {
		t.Errorf("expected nil goal, got %+v", out.Goal)
	}
}

func TestEvaluateGoals(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("monthly breach with overage", func(t *testing.T) {
		goalRepo := newMemGoalRepo()
		goalRepo.goals["alice"] = entity.NewGoal("alice", int64Ptr(1000), nil)
		expenseRepo := &memExpenseRepo{records: []*entity.ExpenseRecord{
			entity.NewExpenseRecord("alice", "rent", 1200, mustDate(t, "05-03-2024"), ""),
		}}

		out, err := newEvaluator(goalRepo, expenseRepo, now).Execute(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Breaches) != 1 {
			t.Fatalf("expected one breach, got %d", len(out.Breaches))
		}
		breach := out.Breaches[0]
		if breach.Period != entity.GoalPeriodMonthly {
			t.Errorf("expected monthly breach, got %s", breach.Period)
		}
		if breach.Overage != 200 {
			t.Errorf("expected overage 200, got %d", breach.Overage)
		}
		if breach.Total != 1200 || breach.Limit != 1000 {
			t.Errorf("unexpected breach payload: %+v", breach)
		}
	})

	t.Run("under the limit reports nothing", func(t *testing.T) {
		goalRepo := newMemGoalRepo()
		goalRepo.goals["alice"] = entity.NewGoal("alice", int64Ptr(1000), nil)
		expenseRepo := &memExpenseRepo{records: []*entity.ExpenseRecord{
			entity.NewExpenseRecord("alice", "rent", 900, mustDate(t, "05-03-2024"), ""),
		}}

		out, err := newEvaluator(goalRepo, expenseRepo, now).Execute(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Breaches) != 0 {
			t.Errorf("expected no breaches, got %+v", out.Breaches)
		}
	})

	t.Run("total equal to the limit is not a breach", func(t *testing.T) {
		goalRepo := newMemGoalRepo()
		goalRepo.goals["alice"] = entity.NewGoal("alice", int64Ptr(1000), nil)
		expenseRepo := &memExpenseRepo{records: []*entity.ExpenseRecord{
			entity.NewExpenseRecord("alice", "rent", 1000, mustDate(t, "05-03-2024"), ""),
		}}

		out, err := newEvaluator(goalRepo, expenseRepo, now).Execute(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Breaches) != 0 {
			t.Errorf("strict excess required, got %+v", out.Breaches)
		}
	})

	t.Run("both limits may fire from one addition", func(t *testing.T) {
		goalRepo := newMemGoalRepo()
		goalRepo.goals["alice"] = entity.NewGoal("alice", int64Ptr(1000), int64Ptr(2000))
		expenseRepo := &memExpenseRepo{records: []*entity.ExpenseRecord{
			entity.NewExpenseRecord("alice", "rent", 1200, mustDate(t, "05-03-2024"), ""),
			entity.NewExpenseRecord("alice", "travel", 1500, mustDate(t, "10-01-2024"), ""),
		}}

		out, err := newEvaluator(goalRepo, expenseRepo, now).Execute(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Breaches) != 2 {
			t.Fatalf("expected two breaches, got %+v", out.Breaches)
		}
		if out.Breaches[0].Period != entity.GoalPeriodMonthly || out.Breaches[1].Period != entity.GoalPeriodYearly {
			t.Errorf("unexpected breach order: %+v", out.Breaches)
		}
		if out.Breaches[1].Overage != 700 {
			t.Errorf("expected yearly overage 700, got %d", out.Breaches[1].Overage)
		}
	})

	t.Run("absent goal needs no evaluation", func(t *testing.T) {
		expenseRepo := &memExpenseRepo{records: []*entity.ExpenseRecord{
			entity.NewExpenseRecord("alice", "rent", 99999, mustDate(t, "05-03-2024"), ""),
		}}

		out, err := newEvaluator(newMemGoalRepo(), expenseRepo, now).Execute(context.Background(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Breaches) != 0 {
			t.Errorf("expected no breaches without a goal, got %+v", out.Breaches)
		}
	})
}
