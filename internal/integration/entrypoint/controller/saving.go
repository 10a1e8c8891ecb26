// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/ledger"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/dto"
)

// SavingController handles saving record endpoints.
type SavingController struct {
	addSavingUseCase   *ledger.AddSavingUseCase
	listSavingsUseCase *ledger.ListSavingsUseCase
}

// NewSavingController creates a new saving controller instance.
func NewSavingController(
	addSavingUseCase *ledger.AddSavingUseCase,
	listSavingsUseCase *ledger.ListSavingsUseCase,
) *SavingController {
	return &SavingController{
		addSavingUseCase:   addSavingUseCase,
		listSavingsUseCase: listSavingsUseCase,
	}
}

// Create handles POST /savings requests.
func (c *SavingController) Create(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	output, err := c.addSavingUseCase.Execute(ctx.Request.Context(), ledger.AddSavingInput{
		Owner:  owner,
		Title:  req.Title,
		Amount: req.Amount,
		Date:   req.Date,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingResponse(output.Record))
}

// List handles GET /savings requests.
func (c *SavingController) List(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	records, err := c.listSavingsUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	response := make([]dto.SavingResponse, 0, len(records))
	for _, record := range records {
		response = append(response, dto.ToSavingResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}
