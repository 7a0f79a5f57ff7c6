package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyUpdateService interface {
	CreateStudyUpdate(ctx context.Context, req *model.CreateStudyUpdateRequest) (*model.StudyUpdate, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.StudyUpdateWithCourse, error)
	// VerifyStudyUpdate marks the entry verified and overwrites the admin
	// comment. Verifying twice is idempotent.
	VerifyStudyUpdate(ctx context.Context, updateID uuid.UUID, req *model.VerifyStudyUpdateRequest) (*model.StudyUpdate, error)
}

type studyUpdateService struct {
	db              *gorm.DB
	studyUpdateRepo repository.StudyUpdateRepository
	userRepo        repository.UserRepository
	courseRepo      repository.CourseRepository
	mailer          Mailer
}

func NewStudyUpdateService(db *gorm.DB, studyUpdateRepo repository.StudyUpdateRepository, userRepo repository.UserRepository, courseRepo repository.CourseRepository, mailer Mailer) StudyUpdateService {
	return &studyUpdateService{
		db:              db,
		studyUpdateRepo: studyUpdateRepo,
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		mailer:          mailer,
	}
}

func (s *studyUpdateService) CreateStudyUpdate(ctx context.Context, req *model.CreateStudyUpdateRequest) (*model.StudyUpdate, error) {
	if _, err := s.userRepo.FindByID(ctx, s.db, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.FindByID(ctx, s.db, req.CourseID); err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	update := &model.StudyUpdate{
		UpdateID: uuid.New(),
		UserID:   req.UserID,
		CourseID: req.CourseID,
		Content:  req.Content,
		Date:     date,
	}
	if err := s.studyUpdateRepo.Create(ctx, s.db, update); err != nil {
		return nil, model.ErrInternalServer
	}
	return update, nil
}

func (s *studyUpdateService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.StudyUpdateWithCourse, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.userRepo.FindByID(ctx, s.db, userID); err != nil {
		return nil, err
	}

	updates, err := s.studyUpdateRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list study updates", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}

	result := make([]*model.StudyUpdateWithCourse, 0, len(updates))
	for _, u := range updates {
		course, err := s.courseRepo.FindByID(ctx, s.db, u.CourseID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInternalServer
		}
		result = append(result, &model.StudyUpdateWithCourse{
			StudyUpdate: *u,
			Course:      course,
		})
	}
	return result, nil
}

func (s *studyUpdateService) VerifyStudyUpdate(ctx context.Context, updateID uuid.UUID, req *model.VerifyStudyUpdateRequest) (*model.StudyUpdate, error) {
	logger := middleware.GetLogger(ctx)

	update, err := s.studyUpdateRepo.FindByID(ctx, s.db, updateID)
	if err != nil {
		return nil, err
	}

	// The comment is replaced wholesale on every verification; an empty
	// comment clears any earlier one.
	update.Verified = true
	update.AdminComment = nil
	if req.AdminComment != "" {
		comment := req.AdminComment
		update.AdminComment = &comment
	}
	if err := s.studyUpdateRepo.Update(ctx, s.db, update); err != nil {
		return nil, model.ErrInternalServer
	}

	// Notification delivery is best effort; a mail failure never fails the
	// verification itself.
	if user, err := s.userRepo.FindByID(ctx, s.db, update.UserID); err == nil {
		subject := "Your study update has been verified"
		body := fmt.Sprintf("Hi %s,\n\nYour study update from %s was verified by an administrator.", user.Name, update.Date.Format("2006-01-02"))
		if update.AdminComment != nil {
			body += "\n\nComment: " + *update.AdminComment
		}
		if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
			logger.Warn("Failed to send verification email", "error", err, "user_id", user.UserID)
		}
	}

	return update, nil
}
