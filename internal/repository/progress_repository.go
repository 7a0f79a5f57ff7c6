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

// ProgressRepository is the persistence boundary for per-course progress rows.
type ProgressRepository interface {
	Create(ctx context.Context, db *gorm.DB, progress *model.Progress) error
	Find(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.Progress, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Progress, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Progress, error)
	Update(ctx context.Context, db *gorm.DB, progress *model.Progress) error
	DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, db *gorm.DB, progress *model.Progress) error {
	if err := db.WithContext(ctx).Create(progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: progress row already exists", model.ErrConflict)
		}
		middleware.GetLogger(ctx).Error("Failed to create progress", "error", err)
		return fmt.Errorf("failed to create progress: %w", err)
	}
	return nil
}

func (r *gormProgressRepository) Find(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.Progress, error) {
	var progress model.Progress
	err := db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find progress", "error", err)
		return nil, fmt.Errorf("failed to find progress: %w", err)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Progress, error) {
	var rows []*model.Progress
	err := db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list progress for user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return rows, nil
}

func (r *gormProgressRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Progress, error) {
	var rows []*model.Progress
	err := db.WithContext(ctx).Find(&rows).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list all progress rows", "error", err)
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return rows, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, db *gorm.DB, progress *model.Progress) error {
	if err := db.WithContext(ctx).Save(progress).Error; err != nil {
		middleware.GetLogger(ctx).Error("Failed to update progress", "error", err, "progress_id", progress.ProgressID)
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

func (r *gormProgressRepository) DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	err := db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&model.Progress{}).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to delete progress for course", "error", err, "course_id", courseID)
		return fmt.Errorf("failed to delete progress: %w", err)
	}
	return nil
}
