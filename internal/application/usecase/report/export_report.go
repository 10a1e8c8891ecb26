package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

// ExportReportInput selects the report window and the target path.
type ExportReportInput struct {
	Owner string
	Year  int
	Month time.Month
	Path  string
}

// ExportReportOutput carries the path the report was written to.
type ExportReportOutput struct {
	Path string
}

// ExportReportUseCase assembles a monthly report and hands it to the
// renderer for persistence. Renderer failures surface as delivery errors,
// never as partial files silently left behind.
type ExportReportUseCase struct {
	buildReport *BuildMonthlyReportUseCase
	renderer    adapter.ReportRenderer
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(buildReport *BuildMonthlyReportUseCase, renderer adapter.ReportRenderer) *ExportReportUseCase {
	return &ExportReportUseCase{
		buildReport: buildReport,
		renderer:    renderer,
	}
}

// Execute assembles and writes the report.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	built, err := uc.buildReport.Execute(ctx, BuildMonthlyReportInput{
		Owner: input.Owner,
		Year:  input.Year,
		Month: input.Month,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.renderer.Write(ctx, built.Report, input.Path); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportWrite,
			fmt.Sprintf("failed to write report to %s", input.Path),
			fmt.Errorf("%w: %v", domainerror.ErrReportWrite, err),
		)
	}

	return &ExportReportOutput{Path: input.Path}, nil
}
