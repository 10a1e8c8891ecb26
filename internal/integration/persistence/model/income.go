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

// IncomeModel represents the incomes table in the database. Dates are stored
// in their canonical DD-MM-YYYY form and re-parsed on read, so a corrupted
// row surfaces as an error instead of a silent zero.
type IncomeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner     string    `gorm:"type:varchar(32);index;not null"`
	Source    string    `gorm:"type:varchar(255);not null"`
	Amount    int64     `gorm:"not null"`
	Date      string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain IncomeRecord entity.
func (m *IncomeModel) ToEntity() (*entity.IncomeRecord, error) {
	date, err := valueobject.ParseCalendarDate(m.Date)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStoredDateCorrupt,
			fmt.Sprintf("stored income record %s has a corrupt date", m.ID),
			err,
		)
	}
	return &entity.IncomeRecord{
		ID:        m.ID,
		Owner:     m.Owner,
		Source:    m.Source,
		Amount:    m.Amount,
		Date:      date,
		CreatedAt: m.CreatedAt,
	}, nil
}

// IncomeFromEntity creates an IncomeModel from a domain IncomeRecord entity.
func IncomeFromEntity(record *entity.IncomeRecord) *IncomeModel {
	return &IncomeModel{
		ID:        record.ID,
		Owner:     record.Owner,
		Source:    record.Source,
		Amount:    record.Amount,
		Date:      record.Date.String(),
		CreatedAt: record.CreatedAt,
	}
}
