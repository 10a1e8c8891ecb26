// Package report contains the monthly report use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

// BuildMonthlyReportInput selects the report window. A zero Year or Month
// defaults to the current calendar year/month.
type BuildMonthlyReportInput struct {
	Owner string
	Year  int
	Month time.Month
}

// BuildMonthlyReportOutput carries the assembled report.
type BuildMonthlyReportOutput struct {
	Report *entity.MonthlyReport
}

// BuildMonthlyReportUseCase assembles a monthly report from the owner's
// income and expense records. Records outside the selected month are
// excluded before totals are computed, so the totals cover exactly the
// reported lines.
type BuildMonthlyReportUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewBuildMonthlyReportUseCase creates a new BuildMonthlyReportUseCase instance.
func NewBuildMonthlyReportUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *BuildMonthlyReportUseCase {
	return &BuildMonthlyReportUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute assembles the report for the selected month.
func (uc *BuildMonthlyReportUseCase) Execute(ctx context.Context, input BuildMonthlyReportInput) (*BuildMonthlyReportOutput, error) {
	now := uc.clock.Now()
	year, month := input.Year, input.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December || year < 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportPeriod,
			fmt.Sprintf("no calendar month %d-%02d", year, month),
			domainerror.ErrInvalidReportPeriod,
		)
	}

	incomes, err := uc.incomeRepo.FindByOwner(ctx, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load income records: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByOwner(ctx, input.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense records: %w", err)
	}

	report := &entity.MonthlyReport{
		Owner: input.Owner,
		Year:  year,
		Month: int(month),
	}
	for _, rec := range incomes {
		if !rec.Date.InMonth(year, month) {
			continue
		}
		report.IncomeLines = append(report.IncomeLines, entity.ReportLine{
			Date:   rec.Date,
			Label:  rec.Source,
			Amount: rec.Amount,
		})
		report.TotalIncome += rec.Amount
	}
	for _, rec := range expenses {
		if !rec.Date.InMonth(year, month) {
			continue
		}
		report.ExpenseLines = append(report.ExpenseLines, entity.ReportLine{
			Date:   rec.Date,
			Label:  rec.Category,
			Amount: rec.Amount,
		})
		report.TotalExpense += rec.Amount
	}
	report.NetBalance = report.TotalIncome - report.TotalExpense

	return &BuildMonthlyReportOutput{Report: report}, nil
}
