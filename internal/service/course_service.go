package service

import (
	"context"
	"errors"

	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseService interface {
	CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*model.Course, error)
	ListCourses(ctx context.Context) ([]*model.CourseListItem, error)
	UpdateCourse(ctx context.Context, courseID uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error
}

type courseService struct {
	db             *gorm.DB
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
}

func NewCourseService(db *gorm.DB, courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository, progressRepo repository.ProgressRepository) CourseService {
	return &courseService{
		db:             db,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		CourseID:    uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Duration:    req.Duration,
		Topics:      datatypes.NewJSONSlice(model.ParseTopics(req.Topics, req.TopicsText)),
	}

	if err := s.courseRepo.Create(ctx, s.db, course); err != nil {
		return nil, model.ErrInternalServer
	}
	return course, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*model.Course, error) {
	return s.courseRepo.FindByID(ctx, s.db, courseID)
}

func (s *courseService) ListCourses(ctx context.Context) ([]*model.CourseListItem, error) {
	logger := middleware.GetLogger(ctx)

	courses, err := s.courseRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list courses", "error", err)
		return nil, model.ErrInternalServer
	}

	items := make([]*model.CourseListItem, 0, len(courses))
	for _, course := range courses {
		count, err := s.enrollmentRepo.CountByCourse(ctx, s.db, course.CourseID)
		if err != nil {
			logger.Error("Failed to count enrollments", "error", err, "course_id", course.CourseID)
			return nil, model.ErrInternalServer
		}
		items = append(items, &model.CourseListItem{
			Course:          course,
			EnrollmentCount: count,
		})
	}
	return items, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, courseID uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Instructor = req.Instructor
	course.Duration = req.Duration
	course.Topics = datatypes.NewJSONSlice(model.ParseTopics(req.Topics, req.TopicsText))

	if err := s.courseRepo.Update(ctx, s.db, course); err != nil {
		return nil, model.ErrInternalServer
	}
	return course, nil
}

// DeleteCourse removes the course and, in the same transaction, every
// enrollment and progress row that references it.
func (s *courseService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByID(ctx, tx, courseID); err != nil {
			return err
		}
		if err := s.enrollmentRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return model.ErrInternalServer
		}
		if err := s.progressRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return model.ErrInternalServer
		}
		if err := s.courseRepo.Delete(ctx, tx, courseID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		logger.Error("Course delete transaction failed", "error", err, "course_id", courseID)
		if errors.Is(err, model.ErrInternalServer) {
			return err
		}
		return model.ErrInternalServer
	}
	return nil
}
