// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/ledger"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/dto"
)

// IncomeController handles income record endpoints.
type IncomeController struct {
	addIncomeUseCase    *ledger.AddIncomeUseCase
	listIncomeUseCase   *ledger.ListIncomeUseCase
	deleteIncomeUseCase *ledger.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	addIncomeUseCase *ledger.AddIncomeUseCase,
	listIncomeUseCase *ledger.ListIncomeUseCase,
	deleteIncomeUseCase *ledger.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		addIncomeUseCase:    addIncomeUseCase,
		listIncomeUseCase:   listIncomeUseCase,
		deleteIncomeUseCase: deleteIncomeUseCase,
	}
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	output, err := c.addIncomeUseCase.Execute(ctx.Request.Context(), ledger.AddIncomeInput{
		Owner:  owner,
		Source: req.Source,
		Amount: req.Amount,
		Date:   req.Date,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Record))
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	records, err := c.listIncomeUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	response := make([]dto.IncomeResponse, 0, len(records))
	for _, record := range records {
		response = append(response, dto.ToIncomeResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /income requests. The target record is identified
// by its full attribute set; a request matching nothing reports deleted=false.
func (c *IncomeController) Delete(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.DeleteRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	output, err := c.deleteIncomeUseCase.Execute(ctx.Request.Context(), ledger.DeleteIncomeInput{
		Owner:  owner,
		Source: req.Label,
		Amount: req.Amount,
		Date:   req.Date,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteRecordResponse{Deleted: output.Deleted})
}
