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

// ChatSessionRepository is the persistence boundary for chat transcripts.
type ChatSessionRepository interface {
	Find(ctx context.Context, db *gorm.DB, sessionID string) (*model.ChatSession, error)
	Save(ctx context.Context, db *gorm.DB, session *model.ChatSession) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.ChatSession, error)
}

type gormChatSessionRepository struct{}

func NewGormChatSessionRepository() ChatSessionRepository {
	return &gormChatSessionRepository{}
}

func (r *gormChatSessionRepository) Find(ctx context.Context, db *gorm.DB, sessionID string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to find chat session", "error", err, "session_id", sessionID)
		return nil, fmt.Errorf("failed to find chat session: %w", err)
	}
	return &session, nil
}

// Save upserts the session row keyed by session id.
func (r *gormChatSessionRepository) Save(ctx context.Context, db *gorm.DB, session *model.ChatSession) error {
	if err := db.WithContext(ctx).Save(session).Error; err != nil {
		middleware.GetLogger(ctx).Error("Failed to save chat session", "error", err, "session_id", session.SessionID)
		return fmt.Errorf("failed to save chat session: %w", err)
	}
	return nil
}

func (r *gormChatSessionRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.ChatSession, error) {
	var sessions []*model.ChatSession
	query := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sessions).Error; err != nil {
		middleware.GetLogger(ctx).Error("Failed to list chat sessions for user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}
