// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
)

// GoalModel represents the goals table in the database. One row per owner;
// a NULL limit means the period has no limit configured.
type GoalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner        string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	MonthlyLimit *int64
	YearlyLimit  *int64
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		Owner:        m.Owner,
		MonthlyLimit: m.MonthlyLimit,
		YearlyLimit:  m.YearlyLimit,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		Owner:        goal.Owner,
		MonthlyLimit: goal.MonthlyLimit,
		YearlyLimit:  goal.YearlyLimit,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
