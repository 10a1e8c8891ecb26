// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalPeriod represents the period a spending limit applies to.
type GoalPeriod string

const (
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// Goal holds the advisory spending limits for an owner. At most one Goal
// exists per owner. A nil limit means no limit is configured for that
// period. Limits are advisory: breaches are reported after the fact, never
// enforced at write time.
type Goal struct {
	ID           uuid.UUID
	Owner        string
	MonthlyLimit *int64
	YearlyLimit  *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new Goal entity for an owner.
func NewGoal(owner string, monthlyLimit, yearlyLimit *int64) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:           uuid.New(),
		Owner:        owner,
		MonthlyLimit: monthlyLimit,
		YearlyLimit:  yearlyLimit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Breach reports an aggregate total strictly exceeding a configured limit.
type Breach struct {
	Period  GoalPeriod
	Limit   int64
	Total   int64
	Overage int64
}
