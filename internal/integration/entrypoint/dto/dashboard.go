// Package dto defines data transfer objects for API requests and responses.
package dto

// TotalsResponse carries the all-time income and expense totals.
type TotalsResponse struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	NetBalance   int64 `json:"net_balance"`
}

// MonthlyTotalResponse carries one month's expense total.
type MonthlyTotalResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Total int64 `json:"total"`
}

// YearlyTotalResponse carries one year's expense total.
type YearlyTotalResponse struct {
	Year  int   `json:"year"`
	Total int64 `json:"total"`
}

// BreakdownItemResponse is one category's share of total spending.
type BreakdownItemResponse struct {
	Category   string  `json:"category"`
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// BreakdownResponse carries the per-category expense breakdown.
type BreakdownResponse struct {
	Items      []BreakdownItemResponse `json:"items"`
	TotalSpent int64                   `json:"total_spent"`
}

// MonthlySeriesResponse carries one calendar year of monthly expense totals,
// January first.
type MonthlySeriesResponse struct {
	Year   int       `json:"year"`
	Totals [12]int64 `json:"totals"`
}
