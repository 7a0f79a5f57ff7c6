package service

import (
	"context"
	"errors"
	"time"

	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProgressService interface {
	// GetProgress returns ErrNotFound until the user has toggled at least one
	// topic in the course.
	GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*model.Progress, error)
	// UpsertProgress replaces the completed-topic set with the one in req and
	// recomputes the percentage against the course's current topic list.
	UpsertProgress(ctx context.Context, req *model.UpsertProgressRequest) (*model.Progress, error)
}

type progressService struct {
	db           *gorm.DB
	progressRepo repository.ProgressRepository
	courseRepo   repository.CourseRepository
}

func NewProgressService(db *gorm.DB, progressRepo repository.ProgressRepository, courseRepo repository.CourseRepository) ProgressService {
	return &progressService{
		db:           db,
		progressRepo: progressRepo,
		courseRepo:   courseRepo,
	}
}

func (s *progressService) GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*model.Progress, error) {
	return s.progressRepo.Find(ctx, s.db, userID, courseID)
}

func (s *progressService) UpsertProgress(ctx context.Context, req *model.UpsertProgressRequest) (*model.Progress, error) {
	logger := middleware.GetLogger(ctx)

	var result *model.Progress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.FindByID(ctx, tx, req.CourseID)
		if err != nil {
			return err
		}

		topics := model.DedupeTopicIndices(req.CompletedTopics)
		percent := model.CompletionPercent(len(topics), len(course.Topics))

		progress, err := s.progressRepo.Find(ctx, tx, req.UserID, req.CourseID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}

		if progress == nil {
			progress = &model.Progress{
				ProgressID:      uuid.New(),
				UserID:          req.UserID,
				CourseID:        req.CourseID,
				CompletedTopics: datatypes.NewJSONSlice(topics),
				Progress:        percent,
				LastUpdated:     time.Now(),
			}
			if err := s.progressRepo.Create(ctx, tx, progress); err != nil {
				return model.ErrInternalServer
			}
			result = progress
			return nil
		}

		progress.CompletedTopics = datatypes.NewJSONSlice(topics)
		progress.Progress = percent
		progress.LastUpdated = time.Now()
		if err := s.progressRepo.Update(ctx, tx, progress); err != nil {
			return model.ErrInternalServer
		}
		result = progress
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Progress upsert failed", "error", err, "user_id", req.UserID, "course_id", req.CourseID)
		return nil, model.ErrInternalServer
	}

	return result, nil
}
