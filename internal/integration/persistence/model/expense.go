// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner       string    `gorm:"type:varchar(32);index;not null"`
	Category    string    `gorm:"type:varchar(255);not null"`
	Amount      int64     `gorm:"not null"`
	Date        string    `gorm:"type:varchar(10);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain ExpenseRecord entity.
func (m *ExpenseModel) ToEntity() (*entity.ExpenseRecord, error) {
	date, err := valueobject.ParseCalendarDate(m.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStoredDateCorrupt,
			fmt.Sprintf("stored expense record %s has a corrupt date", m.ID),
			err,
		)
	}
	return &entity.ExpenseRecord{
		ID:          m.ID,
		Owner:       m.Owner,
		Category:    m.Category,
		Amount:      m.Amount,
		Date:        date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// ExpenseFromEntity creates an ExpenseModel from a domain ExpenseRecord entity.
func ExpenseFromEntity(record *entity.ExpenseRecord) *ExpenseModel {
	return &ExpenseModel{
		ID:          record.ID,
		Owner:       record.Owner,
		Category:    record.Category,
		Amount:      record.Amount,
		Date:        record.Date.String(),
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
	}
}
