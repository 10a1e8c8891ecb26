// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/application/adapter"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/entity"
	domainerror "github.com/Prabhakar0tenn/Expense-Tracker/internal/domain/error"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Upsert creates or updates the single goal row for an owner. A provided
// limit of zero clears the stored limit; a nil limit leaves it untouched.
func (r *goalRepository) Upsert(ctx context.Context, owner string, update adapter.GoalUpdate) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("owner = ?", owner).First(&goalModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		goalModel = *model.GoalFromEntity(entity.NewGoal(owner, nil, nil))
	}

	if update.MonthlyLimit != nil {
		goalModel.MonthlyLimit = resolveLimit(*update.MonthlyLimit)
	}
	if update.YearlyLimit != nil {
		goalModel.YearlyLimit = resolveLimit(*update.YearlyLimit)
	}
	goalModel.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(&goalModel).Error; err != nil {
		return nil, err
	}
	return goalModel.ToEntity(), nil
}

// FindByOwner retrieves the goal for an owner.
func (r *goalRepository) FindByOwner(ctx context.Context, owner string) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("owner = ?", owner).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// resolveLimit maps an explicit zero to "no limit".
func resolveLimit(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
