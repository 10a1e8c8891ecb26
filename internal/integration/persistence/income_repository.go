// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/valueobject"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income record in the database.
func (r *incomeRepository) Create(ctx context.Context, record *entity.IncomeRecord) error {
	incomeModel := model.IncomeFromEntity(record)
	result := r.db.WithContext(ctx).Create(incomeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves all income records for an owner in insertion order.
func (r *incomeRepository) FindByOwner(ctx context.Context, owner string) ([]*entity.IncomeRecord, error) {
	var models []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.IncomeRecord, 0, len(models))
	for i := range models {
		record, err := models[i].ToEntity()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// DeleteOneByFields removes exactly one record matching every field. When
// duplicates exist, one arbitrary match is deleted; when none match, no
// rows change and false is returned.
func (r *incomeRepository) DeleteOneByFields(ctx context.Context, owner, source string, amount int64, date valueobject.CalendarDate) (bool, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("owner = ? AND source = ? AND amount = ? AND date = ?", owner, source, amount, date.String()).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}

	result = r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", incomeModel.ID)
	if result.Error != nil {
		return false, result.Error
	}
	return true, nil
}
