// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/aggregation"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/dto"
)

// DashboardController handles aggregate view endpoints.
type DashboardController struct {
	totalIncomeUseCase    *aggregation.TotalIncomeUseCase
	totalExpenseUseCase   *aggregation.TotalExpenseUseCase
	monthlyExpenseUseCase *aggregation.MonthlyExpenseUseCase
	yearlyExpenseUseCase  *aggregation.YearlyExpenseUseCase
	breakdownUseCase      *aggregation.CategoryBreakdownUseCase
	monthlySeriesUseCase  *aggregation.MonthlySeriesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	totalIncomeUseCase *aggregation.TotalIncomeUseCase,
	totalExpenseUseCase *aggregation.TotalExpenseUseCase,
	monthlyExpenseUseCase *aggregation.MonthlyExpenseUseCase,
	yearlyExpenseUseCase *aggregation.YearlyExpenseUseCase,
	breakdownUseCase *aggregation.CategoryBreakdownUseCase,
	monthlySeriesUseCase *aggregation.MonthlySeriesUseCase,
) *DashboardController {
	return &DashboardController{
		totalIncomeUseCase:    totalIncomeUseCase,
		totalExpenseUseCase:   totalExpenseUseCase,
		monthlyExpenseUseCase: monthlyExpenseUseCase,
		yearlyExpenseUseCase:  yearlyExpenseUseCase,
		breakdownUseCase:      breakdownUseCase,
		monthlySeriesUseCase:  monthlySeriesUseCase,
	}
}

// Totals handles GET /dashboard/totals requests.
func (c *DashboardController) Totals(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	totalIncome, err := c.totalIncomeUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}
	totalExpense, err := c.totalExpenseUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalsResponse{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetBalance:   totalIncome - totalExpense,
	})
}

// Monthly handles GET /dashboard/monthly requests. Optional year and month
// query parameters default to the current calendar month.
func (c *DashboardController) Monthly(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	year, month, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyExpenseUseCase.Execute(ctx.Request.Context(), aggregation.MonthlyExpenseInput{
		Owner: owner,
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthlyTotalResponse{
		Year:  output.Year,
		Month: int(output.Month),
		Total: output.Total,
	})
}

// Yearly handles GET /dashboard/yearly requests.
func (c *DashboardController) Yearly(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	year, _, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.yearlyExpenseUseCase.Execute(ctx.Request.Context(), aggregation.YearlyExpenseInput{
		Owner: owner,
		Year:  year,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.YearlyTotalResponse{
		Year:  output.Year,
		Total: output.Total,
	})
}

// Breakdown handles GET /dashboard/breakdown requests.
func (c *DashboardController) Breakdown(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	items := make([]dto.BreakdownItemResponse, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, dto.BreakdownItemResponse{
			Category:   item.Category,
			Amount:     item.Amount,
			Percentage: item.Percentage,
		})
	}
	ctx.JSON(http.StatusOK, dto.BreakdownResponse{
		Items:      items,
		TotalSpent: output.TotalSpent,
	})
}

// Series handles GET /dashboard/series requests.
func (c *DashboardController) Series(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	year, _, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.monthlySeriesUseCase.Execute(ctx.Request.Context(), aggregation.MonthlySeriesInput{
		Owner: owner,
		Year:  year,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthlySeriesResponse{
		Year:   output.Year,
		Totals: output.Totals,
	})
}

// parsePeriodQuery reads the optional year and month query parameters.
// Missing parameters come back as zero for the use case defaults to fill.
func parsePeriodQuery(ctx *gin.Context) (year, month int, ok bool) {
	var err error
	if raw := ctx.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 0 {
			respondBadPeriod(ctx, "year")
			return 0, 0, false
		}
	}
	if raw := ctx.Query("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			respondBadPeriod(ctx, "month")
			return 0, 0, false
		}
	}
	return year, month, true
}

func respondBadPeriod(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + " parameter",
		Code:  string(domainerror.ErrCodeInvalidReportPeriod),
	})
}
