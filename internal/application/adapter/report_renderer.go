// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
)

// ReportRenderer turns an assembled monthly report into a typeset document.
// The core never performs file I/O itself; failures from the renderer are
// surfaced to the caller unchanged.
type ReportRenderer interface {
	// Render produces the HTML and plain-text forms of the report.
	Render(report *entity.MonthlyReport) (html string, text string, err error)

	// Write renders the report and persists it to the target path.
	Write(ctx context.Context, report *entity.MonthlyReport, path string) error
}
