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

// EnrollmentRepository is the persistence boundary for the enrollment ledger.
type EnrollmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error
	Find(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.Enrollment, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Enrollment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Enrollment, error)
	CountByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (int64, error)
	CountDistinctUsers(ctx context.Context, db *gorm.DB) (int64, error)
	DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

type gormEnrollmentRepository struct{}

func NewGormEnrollmentRepository() EnrollmentRepository {
	return &gormEnrollmentRepository{}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error {
	if err := db.WithContext(ctx).Create(enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: user is already enrolled", model.ErrConflict)
		}
		middleware.GetLogger(ctx).Error("Failed to create enrollment", "error", err)
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (r *gormEnrollmentRepository) Find(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find enrollment", "error", err)
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Enrollment, error) {
	var enrollments []*model.Enrollment
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list enrollments for user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Enrollment, error) {
	var enrollments []*model.Enrollment
	err := db.WithContext(ctx).Find(&enrollments).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list all enrollments", "error", err)
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) CountByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to count enrollments for course", "error", err, "course_id", courseID)
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

func (r *gormEnrollmentRepository) CountDistinctUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Distinct("user_id").
		Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to count enrolled users", "error", err)
		return 0, fmt.Errorf("failed to count enrolled users: %w", err)
	}
	return count, nil
}

func (r *gormEnrollmentRepository) DeleteByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	err := db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&model.Enrollment{}).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to delete enrollments for course", "error", err, "course_id", courseID)
		return fmt.Errorf("failed to delete enrollments: %w", err)
	}
	return nil
}
