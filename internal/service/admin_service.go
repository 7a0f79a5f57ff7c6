package service

import (
	"context"
	"math"

	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminService interface {
	GetStats(ctx context.Context) (*model.AdminStats, error)
	ListStudents(ctx context.Context) ([]*model.StudentSummary, error)
	GetStudentDetail(ctx context.Context, userID uuid.UUID) (*model.StudentDetail, error)
}

type adminService struct {
	db                 *gorm.DB
	userRepo           repository.UserRepository
	courseRepo         repository.CourseRepository
	enrollmentRepo     repository.EnrollmentRepository
	progressRepo       repository.ProgressRepository
	enrollmentService  EnrollmentService
	studyUpdateService StudyUpdateService
}

func NewAdminService(db *gorm.DB, userRepo repository.UserRepository, courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository, progressRepo repository.ProgressRepository, enrollmentService EnrollmentService, studyUpdateService StudyUpdateService) AdminService {
	return &adminService{
		db:                 db,
		userRepo:           userRepo,
		courseRepo:         courseRepo,
		enrollmentRepo:     enrollmentRepo,
		progressRepo:       progressRepo,
		enrollmentService:  enrollmentService,
		studyUpdateService: studyUpdateService,
	}
}

// GetStats computes the dashboard rollup. AvgCompletion averages progress
// over all enrollments, counting an enrollment without a progress row as 0.
func (s *adminService) GetStats(ctx context.Context) (*model.AdminStats, error) {
	logger := middleware.GetLogger(ctx)

	courses, err := s.courseRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to load courses for stats", "error", err)
		return nil, model.ErrInternalServer
	}

	activeStudents, err := s.enrollmentRepo.CountDistinctUsers(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	enrollments, err := s.enrollmentRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	progressRows, err := s.progressRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	type pair struct{ user, course uuid.UUID }
	percentByPair := make(map[pair]int, len(progressRows))
	for _, p := range progressRows {
		percentByPair[pair{p.UserID, p.CourseID}] = p.Progress
	}

	avgCompletion := 0
	if len(enrollments) > 0 {
		sum := 0
		for _, e := range enrollments {
			sum += percentByPair[pair{e.UserID, e.CourseID}]
		}
		avgCompletion = int(math.Round(float64(sum) / float64(len(enrollments))))
	}

	return &model.AdminStats{
		TotalCourses:     int64(len(courses)),
		ActiveStudents:   activeStudents,
		TotalEnrollments: int64(len(enrollments)),
		AvgCompletion:    avgCompletion,
	}, nil
}

func (s *adminService) ListStudents(ctx context.Context) ([]*model.StudentSummary, error) {
	logger := middleware.GetLogger(ctx)

	students, err := s.userRepo.FindByRole(ctx, s.db, model.RoleStudent)
	if err != nil {
		logger.Error("Failed to list students", "error", err)
		return nil, model.ErrInternalServer
	}

	summaries := make([]*model.StudentSummary, 0, len(students))
	for _, student := range students {
		enrollments, err := s.enrollmentRepo.FindByUser(ctx, s.db, student.UserID)
		if err != nil {
			return nil, model.ErrInternalServer
		}
		progressRows, err := s.progressRepo.FindByUser(ctx, s.db, student.UserID)
		if err != nil {
			return nil, model.ErrInternalServer
		}
		percentByCourse := make(map[uuid.UUID]*model.Progress, len(progressRows))
		for _, p := range progressRows {
			percentByCourse[p.CourseID] = p
		}

		courseProgress := make([]*model.CourseProgressSummary, 0, len(enrollments))
		sum := 0
		for _, e := range enrollments {
			course, err := s.courseRepo.FindByID(ctx, s.db, e.CourseID)
			if err != nil {
				continue
			}
			row := &model.CourseProgressSummary{
				CourseID:    course.CourseID,
				CourseTitle: course.Title,
				TotalTopics: len(course.Topics),
			}
			if p := percentByCourse[e.CourseID]; p != nil {
				row.Progress = p.Progress
				row.CompletedTopics = len(p.CompletedTopics)
			}
			sum += row.Progress
			courseProgress = append(courseProgress, row)
		}

		avgProgress := 0
		if len(enrollments) > 0 {
			avgProgress = int(math.Round(float64(sum) / float64(len(enrollments))))
		}

		summaries = append(summaries, &model.StudentSummary{
			User:            *student,
			EnrollmentCount: len(enrollments),
			AvgProgress:     avgProgress,
			CourseProgress:  courseProgress,
		})
	}
	return summaries, nil
}

func (s *adminService) GetStudentDetail(ctx context.Context, userID uuid.UUID) (*model.StudentDetail, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentService.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	studyUpdates, err := s.studyUpdateService.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.StudentDetail{
		User:         *user,
		Enrollments:  enrollments,
		StudyUpdates: studyUpdates,
	}, nil
}
