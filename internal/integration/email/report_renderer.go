// Package email provides report delivery via Resend.
package email

import (
	"context"
	"fmt"
	"os"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/email/templates"
)

const reportTemplate = "monthly_report"

// ReportRenderer implements adapter.ReportRenderer on top of the embedded
// report templates.
type ReportRenderer struct {
	renderer *templates.Renderer
}

// NewReportRenderer creates a new report renderer instance.
func NewReportRenderer() (*ReportRenderer, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &ReportRenderer{renderer: renderer}, nil
}

// Render produces the HTML and plain-text forms of the report.
func (r *ReportRenderer) Render(report *entity.MonthlyReport) (string, string, error) {
	return r.renderer.Render(reportTemplate, toTemplateData(report))
}

// Write renders the report and persists its HTML form to the target path.
func (r *ReportRenderer) Write(ctx context.Context, report *entity.MonthlyReport, path string) error {
	html, _, err := r.Render(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

func toTemplateData(report *entity.MonthlyReport) templates.MonthlyReportData {
	data := templates.MonthlyReportData{
		Owner:        report.Owner,
		Period:       fmt.Sprintf("%04d-%02d", report.Year, report.Month),
		TotalIncome:  report.TotalIncome,
		TotalExpense: report.TotalExpense,
		NetBalance:   report.NetBalance,
	}
	for _, line := range report.IncomeLines {
		data.IncomeLines = append(data.IncomeLines, templates.MonthlyReportLine{
			Date:   line.Date.String(),
			Label:  line.Label,
			Amount: line.Amount,
		})
	}
	for _, line := range report.ExpenseLines {
		data.ExpenseLines = append(data.ExpenseLines, templates.MonthlyReportLine{
			Date:   line.Date.String(),
			Label:  line.Label,
			Amount: line.Amount,
		})
	}
	return data
}

// Ensure implementation satisfies the interface.
var _ adapter.ReportRenderer = (*ReportRenderer)(nil)
