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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense record in the database.
func (r *expenseRepository) Create(ctx context.Context, record *entity.ExpenseRecord) error {
	expenseModel := model.ExpenseFromEntity(record)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves all expense records for an owner in insertion order.
func (r *expenseRepository) FindByOwner(ctx context.Context, owner string) ([]*entity.ExpenseRecord, error) {
	var models []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ExpenseRecord, 0, len(models))
	for i := range models {
		record, err := models[i].ToEntity()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// DeleteOneByFields removes exactly one record matching every field. The
// description is not part of the match; deletion identity is owner,
// category, amount and date.
func (r *expenseRepository) DeleteOneByFields(ctx context.Context, owner, category string, amount int64, date valueobject.CalendarDate) (bool, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("owner = ? AND category = ? AND amount = ? AND date = ?", owner, category, amount, date.String()).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}

	result = r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", expenseModel.ID)
	if result.Error != nil {
		return false, result.Error
	}
	return true, nil
}
