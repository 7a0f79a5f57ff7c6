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

// UserRepository is the persistence boundary for users.
type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	FindByRole(ctx context.Context, db *gorm.DB, role string) ([]*model.User, error)
	Update(ctx context.Context, db *gorm.DB, user *model.User) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Warn("User already exists", "external_id", user.ExternalID, "email", user.Email)
			return fmt.Errorf("%w: user already exists", model.ErrConflict)
		}
		logger.Error("Failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find user by id", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("external_id = ?", externalID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find user by external id", "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find user by email", "error", err)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByRole(ctx context.Context, db *gorm.DB, role string) ([]*model.User, error) {
	var users []*model.User
	err := db.WithContext(ctx).Where("role = ?", role).Order("created_at ASC").Find(&users).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list users by role", "error", err, "role", role)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, user *model.User) error {
	result := db.WithContext(ctx).Save(user)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Failed to update user", "error", result.Error, "user_id", user.UserID)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}
