package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
)

// EmailReportInput selects the report window and the recipient address.
type EmailReportInput struct {
	Owner string
	Year  int
	Month time.Month
	To    string
}

// EmailReportOutput carries the recipient the report was delivered to.
type EmailReportOutput struct {
	To string
}

// EmailReportUseCase assembles a monthly report, renders it and delivers it
// through the email provider.
type EmailReportUseCase struct {
	buildReport *BuildMonthlyReportUseCase
	renderer    adapter.ReportRenderer
	sender      adapter.EmailSender
}

// NewEmailReportUseCase creates a new EmailReportUseCase instance.
func NewEmailReportUseCase(
	buildReport *BuildMonthlyReportUseCase,
	renderer adapter.ReportRenderer,
	sender adapter.EmailSender,
) *EmailReportUseCase {
	return &EmailReportUseCase{
		buildReport: buildReport,
		renderer:    renderer,
		sender:      sender,
	}
}

// Execute assembles, renders and emails the report.
func (uc *EmailReportUseCase) Execute(ctx context.Context, input EmailReportInput) (*EmailReportOutput, error) {
	if input.To == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingReportFields,
			"recipient address is required",
			nil,
		)
	}

	built, err := uc.buildReport.Execute(ctx, BuildMonthlyReportInput{
		Owner: input.Owner,
		Year:  input.Year,
		Month: input.Month,
	})
	if err != nil {
		return nil, err
	}

	html, text, err := uc.renderer.Render(built.Report)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportWrite,
			"failed to render report",
			fmt.Errorf("%w: %v", domainerror.ErrReportWrite, err),
		)
	}

	subject := fmt.Sprintf("Monthly report %04d-%02d", built.Report.Year, built.Report.Month)
	sendInput := adapter.SendEmailInput{
		To:      input.To,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}
	if err := uc.sender.Send(ctx, sendInput); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportDelivery,
			fmt.Sprintf("failed to deliver report to %s", input.To),
			fmt.Errorf("%w: %v", domainerror.ErrReportDelivery, err),
		)
	}

	return &EmailReportOutput{To: input.To}, nil
}
