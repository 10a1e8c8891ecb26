// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/report"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/dto"
)

// ReportController handles monthly report endpoints.
type ReportController struct {
	buildReportUseCase  *report.BuildMonthlyReportUseCase
	exportReportUseCase *report.ExportReportUseCase
	emailReportUseCase  *report.EmailReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	buildReportUseCase *report.BuildMonthlyReportUseCase,
	exportReportUseCase *report.ExportReportUseCase,
	emailReportUseCase *report.EmailReportUseCase,
) *ReportController {
	return &ReportController{
		buildReportUseCase:  buildReportUseCase,
		exportReportUseCase: exportReportUseCase,
		emailReportUseCase:  emailReportUseCase,
	}
}

// Monthly handles GET /reports/monthly requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	year, month, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.buildReportUseCase.Execute(ctx.Request.Context(), report.BuildMonthlyReportInput{
		Owner: owner,
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		respondReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toReportResponse(output.Report))
}

// Export handles POST /reports/monthly/export requests.
func (c *ReportController) Export(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.ExportReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingReportFields),
		})
		return
	}

	output, err := c.exportReportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		Owner: owner,
		Year:  req.Year,
		Month: time.Month(req.Month),
		Path:  req.Path,
	})
	if err != nil {
		respondReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExportReportResponse{Path: output.Path})
}

// Email handles POST /reports/monthly/email requests.
func (c *ReportController) Email(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.EmailReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingReportFields),
		})
		return
	}

	output, err := c.emailReportUseCase.Execute(ctx.Request.Context(), report.EmailReportInput{
		Owner: owner,
		Year:  req.Year,
		Month: time.Month(req.Month),
		To:    req.To,
	})
	if err != nil {
		respondReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Report delivered to " + output.To,
	})
}

func toReportResponse(r *entity.MonthlyReport) dto.MonthlyReportResponse {
	response := dto.MonthlyReportResponse{
		Year:         r.Year,
		Month:        r.Month,
		IncomeLines:  make([]dto.ReportLineResponse, 0, len(r.IncomeLines)),
		ExpenseLines: make([]dto.ReportLineResponse, 0, len(r.ExpenseLines)),
		TotalIncome:  r.TotalIncome,
		TotalExpense: r.TotalExpense,
		NetBalance:   r.NetBalance,
	}
	for _, line := range r.IncomeLines {
		response.IncomeLines = append(response.IncomeLines, dto.ReportLineResponse{
			Date:   line.Date.String(),
			Label:  line.Label,
			Amount: line.Amount,
		})
	}
	for _, line := range r.ExpenseLines {
		response.ExpenseLines = append(response.ExpenseLines, dto.ReportLineResponse{
			Date:   line.Date.String(),
			Label:  line.Label,
			Amount: line.Amount,
		})
	}
	return response
}
