// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
)

// SetGoalsRequest represents the request body for setting spending limits.
// An omitted limit is left untouched; an explicit zero clears it.
type SetGoalsRequest struct {
	MonthlyLimit *int64 `json:"monthly_limit" binding:"omitempty,gte=0"`
	YearlyLimit  *int64 `json:"yearly_limit" binding:"omitempty,gte=0"`
}

// GoalResponse represents the stored spending limits in API responses.
type GoalResponse struct {
	MonthlyLimit *int64    `json:"monthly_limit"`
	YearlyLimit  *int64    `json:"yearly_limit"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BreachResponse reports an aggregate total exceeding a configured limit.
type BreachResponse struct {
	Period  string `json:"period"`
	Limit   int64  `json:"limit"`
	Total   int64  `json:"total"`
	Overage int64  `json:"overage"`
}

// GoalEvaluationResponse carries the current breach warnings for an owner.
type GoalEvaluationResponse struct {
	Breaches []BreachResponse `json:"breaches"`
}

// ToGoalResponse converts a domain Goal entity to its DTO.
func ToGoalResponse(goal *entity.Goal) GoalResponse {
	return GoalResponse{
		MonthlyLimit: goal.MonthlyLimit,
		YearlyLimit:  goal.YearlyLimit,
		UpdatedAt:    goal.UpdatedAt,
	}
}

// ToBreachResponses converts domain breaches to their DTOs.
func ToBreachResponses(breaches []entity.Breach) []BreachResponse {
	out := make([]BreachResponse, 0, len(breaches))
	for _, b := range breaches {
		out = append(out, BreachResponse{
			Period:  string(b.Period),
			Limit:   b.Limit,
			Total:   b.Total,
			Overage: b.Overage,
		})
	}
	return out
}
