package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyUpdateRepository is the persistence boundary for study updates.
type StudyUpdateRepository interface {
	Create(ctx context.Context, db *gorm.DB, update *model.StudyUpdate) error
	FindByID(ctx context.Context, db *gorm.DB, updateID uuid.UUID) (*model.StudyUpdate, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.StudyUpdate, error)
	Update(ctx context.Context, db *gorm.DB, update *model.StudyUpdate) error
}

type gormStudyUpdateRepository struct{}

func NewGormStudyUpdateRepository() StudyUpdateRepository {
	return &gormStudyUpdateRepository{}
}

func (r *gormStudyUpdateRepository) Create(ctx context.Context, db *gorm.DB, update *model.StudyUpdate) error {
	if err := db.WithContext(ctx).Create(update).Error; err != nil {
		middleware.GetLogger(ctx).Error("Failed to create study update", "error", err)
		return fmt.Errorf("failed to create study update: %w", err)
	}
	return nil
}

func (r *gormStudyUpdateRepository) FindByID(ctx context.Context, db *gorm.DB, updateID uuid.UUID) (*model.StudyUpdate, error) {
	var update model.StudyUpdate
	err := db.WithContext(ctx).Where("update_id = ?", updateID).First(&update).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find study update", "error", err, "update_id", updateID)
		return nil, fmt.Errorf("failed to find study update: %w", err)
	}
	return &update, nil
}

func (r *gormStudyUpdateRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.StudyUpdate, error) {
	var updates []*model.StudyUpdate
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&updates).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list study updates for user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list study updates: %w", err)
	}
	return updates, nil
}

func (r *gormStudyUpdateRepository) Update(ctx context.Context, db *gorm.DB, update *model.StudyUpdate) error {
	if err := db.WithContext(ctx).Save(update).Error; err != nil {
		middleware.GetLogger(ctx).Error("Failed to update study update", "error", err, "update_id", update.UpdateID)
		return fmt.Errorf("failed to update study update: %w", err)
	}
	return nil
}
