// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"

// ReportLine is a single record line inside a monthly report.
type ReportLine struct {
	Date   valueobject.CalendarDate
	Label  string
	Amount int64
}

// MonthlyReport is the assembled data handed to the external renderer. All
// totals are computed over exactly the filtered month, not the owner's
// all-time records.
type MonthlyReport struct {
	Owner        string
	Year         int
	Month        int
	IncomeLines  []ReportLine
	ExpenseLines []ReportLine
	TotalIncome  int64
	TotalExpense int64
	NetBalance   int64
}
