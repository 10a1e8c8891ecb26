// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/persistence/model"
)

// savingRepository implements the adapter.SavingRepository interface.
type savingRepository struct {
	db *gorm.DB
}

// NewSavingRepository creates a new saving repository instance.
func NewSavingRepository(db *gorm.DB) adapter.SavingRepository {
	return &savingRepository{
		db: db,
	}
}

// Create creates a new saving record in the database.
func (r *savingRepository) Create(ctx context.Context, record *entity.SavingRecord) error {
	savingModel := model.SavingFromEntity(record)
	result := r.db.WithContext(ctx).Create(savingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves all saving records for an owner in insertion order.
func (r *savingRepository) FindByOwner(ctx context.Context, owner string) ([]*entity.SavingRecord, error) {
	var models []model.SavingModel
	result := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.SavingRecord, 0, len(models))
	for i := range models {
		record, err := models[i].ToEntity()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
