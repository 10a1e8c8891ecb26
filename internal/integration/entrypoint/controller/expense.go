// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	goalusecase "github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/goal"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/ledger"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense record endpoints. Creating an expense
// also evaluates the owner's spending limits; breaches come back as
// warnings on the response, never as a rejection.
type ExpenseController struct {
	addExpenseUseCase    *ledger.AddExpenseUseCase
	listExpensesUseCase  *ledger.ListExpensesUseCase
	deleteExpenseUseCase *ledger.DeleteExpenseUseCase
	evaluateGoalsUseCase *goalusecase.EvaluateGoalsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addExpenseUseCase *ledger.AddExpenseUseCase,
	listExpensesUseCase *ledger.ListExpensesUseCase,
	deleteExpenseUseCase *ledger.DeleteExpenseUseCase,
	evaluateGoalsUseCase *goalusecase.EvaluateGoalsUseCase,
) *ExpenseController {
	return &ExpenseController{
		addExpenseUseCase:    addExpenseUseCase,
		listExpensesUseCase:  listExpensesUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
		evaluateGoalsUseCase: evaluateGoalsUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	output, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), ledger.AddExpenseInput{
		Owner:       owner,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	response := dto.CreateExpenseResponse{
		Expense: dto.ToExpenseResponse(output.Record),
	}

	// The record is already stored; a failed evaluation must not undo it.
	if evaluation, err := c.evaluateGoalsUseCase.Execute(ctx.Request.Context(), owner); err == nil {
		response.Warnings = dto.ToBreachResponses(evaluation.Breaches)
	}

	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	records, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	response := make([]dto.ExpenseResponse, 0, len(records))
	for _, record := range records {
		response = append(response, dto.ToExpenseResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /expenses requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
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

	output, err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), ledger.DeleteExpenseInput{
		Owner:    owner,
		Category: req.Label,
		Amount:   req.Amount,
		Date:     req.Date,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteRecordResponse{Deleted: output.Deleted})
}
