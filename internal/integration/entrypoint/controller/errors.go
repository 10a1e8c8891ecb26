// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/dto"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/middleware"
)

// respondLedgerError maps ledger errors to HTTP responses. Validation
// failures are client errors; a corrupt stored date is a server fault.
func respondLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := http.StatusBadRequest
		if ledgerErr.Code == domainerror.ErrCodeStoredDateCorrupt {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// respondGoalError maps goal errors to HTTP responses.
func respondGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusBadRequest
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// respondReportError maps report errors to HTTP responses.
func respondReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		var status int
		switch reportErr.Code {
		case domainerror.ErrCodeInvalidReportPeriod, domainerror.ErrCodeMissingReportFields:
			status = http.StatusBadRequest
		case domainerror.ErrCodeReportDelivery:
			status = http.StatusBadGateway
		default:
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		respondLedgerError(ctx, err)
		return
	}

	respondInternalError(ctx)
}

func respondInternalError(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// requireOwner extracts the authenticated username or aborts with 401.
func requireOwner(ctx *gin.Context) (string, bool) {
	owner, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return "", false
	}
	return owner, true
}
