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

// SavingModel represents the savings table in the database.
type SavingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner     string    `gorm:"type:varchar(32);index;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Amount    int64     `gorm:"not null"`
	Date      string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SavingModel.
func (SavingModel) TableName() string {
	return "savings"
}

// ToEntity converts a SavingModel to a domain SavingRecord entity.
func (m *SavingModel) ToEntity() (*entity.SavingRecord, error) {
	date, err := valueobject.ParseCalendarDate(m.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStoredDateCorrupt,
			fmt.Sprintf("stored saving record %s has a corrupt date", m.ID),
			err,
		)
	}
	return &entity.SavingRecord{
		ID:        m.ID,
		Owner:     m.Owner,
		Title:     m.Title,
		Amount:    m.Amount,
		Date:      date,
		CreatedAt: m.CreatedAt,
	}, nil
}

// SavingFromEntity creates a SavingModel from a domain SavingRecord entity.
func SavingFromEntity(record *entity.SavingRecord) *SavingModel {
	return &SavingModel{
		ID:        record.ID,
		Owner:     record.Owner,
		Title:     record.Title,
		Amount:    record.Amount,
		Date:      record.Date.String(),
		CreatedAt: record.CreatedAt,
	}
}
