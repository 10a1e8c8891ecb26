// Package dto defines data transfer objects for API requests and responses.
package dto

// ReportLineResponse is one record line inside a monthly report.
type ReportLineResponse struct {
	Date   string `json:"date"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// MonthlyReportResponse represents an assembled monthly report.
type MonthlyReportResponse struct {
	Year         int                  `json:"year"`
	Month        int                  `json:"month"`
	IncomeLines  []ReportLineResponse `json:"income_lines"`
	ExpenseLines []ReportLineResponse `json:"expense_lines"`
	TotalIncome  int64                `json:"total_income"`
	TotalExpense int64                `json:"total_expense"`
	NetBalance   int64                `json:"net_balance"`
}

// ExportReportRequest represents the request body for exporting a report.
type ExportReportRequest struct {
	Year  int    `json:"year" binding:"omitempty,gte=0"`
	Month int    `json:"month" binding:"omitempty,gte=1,lte=12"`
	Path  string `json:"path" binding:"required"`
}

// EmailReportRequest represents the request body for emailing a report.
type EmailReportRequest struct {
	Year  int    `json:"year" binding:"omitempty,gte=0"`
	Month int    `json:"month" binding:"omitempty,gte=1,lte=12"`
	To    string `json:"to" binding:"required,email"`
}

// ExportReportResponse carries the path the report was written to.
type ExportReportResponse struct {
	Path string `json:"path"`
}
