// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	goalusecase "github.com/Prabhakar0tenn/Expense-Tracker/internal/application/usecase/goal"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/dto"
)

// GoalController handles spending limit endpoints.
type GoalController struct {
	setGoalsUseCase      *goalusecase.SetGoalsUseCase
	getGoalsUseCase      *goalusecase.GetGoalsUseCase
	evaluateGoalsUseCase *goalusecase.EvaluateGoalsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	setGoalsUseCase *goalusecase.SetGoalsUseCase,
	getGoalsUseCase *goalusecase.GetGoalsUseCase,
	evaluateGoalsUseCase *goalusecase.EvaluateGoalsUseCase,
) *GoalController {
	return &GoalController{
		setGoalsUseCase:      setGoalsUseCase,
		getGoalsUseCase:      getGoalsUseCase,
		evaluateGoalsUseCase: evaluateGoalsUseCase,
	}
}

// Set handles PUT /goals requests. Omitted limits are left untouched and an
// explicit zero clears the stored limit.
func (c *GoalController) Set(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.SetGoalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.setGoalsUseCase.Execute(ctx.Request.Context(), goalusecase.SetGoalsInput{
		Owner:        owner,
		MonthlyLimit: req.MonthlyLimit,
		YearlyLimit:  req.YearlyLimit,
	})
	if err != nil {
		respondGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals requests. An owner with no stored goal receives an
// empty response body with both limits null.
func (c *GoalController) Get(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.getGoalsUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondGoalError(ctx, err)
		return
	}

	if output.Goal == nil {
		ctx.JSON(http.StatusOK, dto.GoalResponse{})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Evaluate handles GET /goals/evaluation requests.
func (c *GoalController) Evaluate(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.evaluateGoalsUseCase.Execute(ctx.Request.Context(), owner)
	if err != nil {
		respondGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalEvaluationResponse{
		Breaches: dto.ToBreachResponses(output.Breaches),
	})
}
