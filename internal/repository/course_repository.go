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

// CourseRepository is the persistence boundary for catalog courses.
type CourseRepository interface {
	Create(ctx context.Context, db *gorm.DB, course *model.Course) error
	FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Course, error)
	Update(ctx context.Context, db *gorm.DB, course *model.Course) error
	Delete(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func (r *gormCourseRepository) Create(ctx context.Context, db *gorm.DB, course *model.Course) error {
	if err := db.WithContext(ctx).Create(course).Error; err != nil {
		middleware.GetLogger(ctx).Error("Failed to create course", "error", err)
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	var course model.Course
	err := db.WithContext(ctx).Where("course_id = ?", courseID).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find course", "error", err, "course_id", courseID)
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	return &course, nil
}

func (r *gormCourseRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Course, error) {
	var courses []*model.Course
	err := db.WithContext(ctx).Order("created_at ASC").Find(&courses).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list courses", "error", err)
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (r *gormCourseRepository) Update(ctx context.Context, db *gorm.DB, course *model.Course) error {
	if err := db.WithContext(ctx).Save(course).Error; err != nil {
		middleware.GetLogger(ctx).Error("Failed to update course", "error", err, "course_id", course.CourseID)
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

func (r *gormCourseRepository) Delete(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	result := db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Course{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Failed to delete course", "error", result.Error, "course_id", courseID)
		return fmt.Errorf("failed to delete course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
