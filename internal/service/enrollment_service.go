package service

import (
	"context"
	"errors"
	"time"

	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	// Enroll registers the user in the course. The bool reports whether a new
	// row was created; re-enrolling is a no-op, not an error.
	Enroll(ctx context.Context, req *model.EnrollRequest) (*model.Enrollment, bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.EnrollmentWithCourse, error)
}

type enrollmentService struct {
	db             *gorm.DB
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
	userRepo       repository.UserRepository
	progressRepo   repository.ProgressRepository
}

func NewEnrollmentService(db *gorm.DB, enrollmentRepo repository.EnrollmentRepository, courseRepo repository.CourseRepository, userRepo repository.UserRepository, progressRepo repository.ProgressRepository) EnrollmentService {
	return &enrollmentService{
		db:             db,
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		progressRepo:   progressRepo,
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, req *model.EnrollRequest) (*model.Enrollment, bool, error) {
	logger := middleware.GetLogger(ctx)

	var enrollment *model.Enrollment
	var created bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(ctx, tx, req.UserID); err != nil {
			return err
		}
		if _, err := s.courseRepo.FindByID(ctx, tx, req.CourseID); err != nil {
			return err
		}

		existing, err := s.enrollmentRepo.Find(ctx, tx, req.UserID, req.CourseID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}
		if existing != nil {
			enrollment = existing
			return nil
		}

		enrollment = &model.Enrollment{
			EnrollmentID: uuid.New(),
			UserID:       req.UserID,
			CourseID:     req.CourseID,
			EnrolledAt:   time.Now(),
		}
		if err := s.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
			// A concurrent enroll for the same pair loses the race on the
			// unique index; treat that the same as finding the row.
			if errors.Is(err, model.ErrConflict) {
				existing, findErr := s.enrollmentRepo.Find(ctx, tx, req.UserID, req.CourseID)
				if findErr != nil {
					return model.ErrInternalServer
				}
				enrollment = existing
				return nil
			}
			return model.ErrInternalServer
		}
		created = true
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, false, err
		}
		logger.Error("Enroll transaction failed", "error", err, "user_id", req.UserID, "course_id", req.CourseID)
		return nil, false, model.ErrInternalServer
	}

	return enrollment, created, nil
}

func (s *enrollmentService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.EnrollmentWithCourse, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.userRepo.FindByID(ctx, s.db, userID); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list enrollments", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}

	progressRows, err := s.progressRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load progress rows", "error", err, "user_id", userID)
		return nil, model.ErrInternalServer
	}
	progressByCourse := make(map[uuid.UUID]*model.Progress, len(progressRows))
	for _, p := range progressRows {
		progressByCourse[p.CourseID] = p
	}

	result := make([]*model.EnrollmentWithCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.courseRepo.FindByID(ctx, s.db, e.CourseID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				// Course deleted out from under the ledger; skip the orphan.
				logger.Warn("Enrollment references missing course", "course_id", e.CourseID)
				continue
			}
			return nil, model.ErrInternalServer
		}
		result = append(result, &model.EnrollmentWithCourse{
			Enrollment: *e,
			Course:     course,
			Progress:   progressByCourse[e.CourseID],
		})
	}
	return result, nil
}
