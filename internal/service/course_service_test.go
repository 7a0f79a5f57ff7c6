package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func Test_courseService_CreateCourse(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("topics list normalized", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		courseRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Course")).
			Run(func(args mock.Arguments) {
				course := args.Get(2).(*model.Course)
				assert.NotEqual(t, uuid.Nil, course.CourseID)
				assert.Equal(t, []string{"intro", "basics"}, []string(course.Topics))
			}).Return(nil).Once()

		svc := NewCourseService(db, courseRepo, new(mocks.EnrollmentRepository), new(mocks.ProgressRepository))
		course, err := svc.CreateCourse(ctx, &model.CreateCourseRequest{
			Title:       "Go 101",
			Description: "Introductory course",
			Topics:      []string{" intro ", "", "basics"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Go 101", course.Title)
		courseRepo.AssertExpectations(t)
	})

	t.Run("free-text topics parsed", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		courseRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Course")).
			Run(func(args mock.Arguments) {
				course := args.Get(2).(*model.Course)
				assert.Equal(t, []string{"intro", "basics", "advanced"}, []string(course.Topics))
			}).Return(nil).Once()

		svc := NewCourseService(db, courseRepo, new(mocks.EnrollmentRepository), new(mocks.ProgressRepository))
		_, err := svc.CreateCourse(ctx, &model.CreateCourseRequest{
			Title:       "Go 101",
			Description: "Introductory course",
			TopicsText:  "intro\nbasics, advanced",
		})
		require.NoError(t, err)
		courseRepo.AssertExpectations(t)
	})

	t.Run("repository failure", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		courseRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Course")).
			Return(errors.New("db down")).Once()

		svc := NewCourseService(db, courseRepo, new(mocks.EnrollmentRepository), new(mocks.ProgressRepository))
		_, err := svc.CreateCourse(ctx, &model.CreateCourseRequest{Title: "T", Description: "D"})
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}

func Test_courseService_ListCourses(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	courseA := &model.Course{CourseID: uuid.New(), Title: "A"}
	courseB := &model.Course{CourseID: uuid.New(), Title: "B"}

	courseRepo := new(mocks.CourseRepository)
	enrollmentRepo := new(mocks.EnrollmentRepository)
	courseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
		Return([]*model.Course{courseA, courseB}, nil).Once()
	enrollmentRepo.On("CountByCourse", ctx, mock.AnythingOfType("*gorm.DB"), courseA.CourseID).
		Return(int64(3), nil).Once()
	enrollmentRepo.On("CountByCourse", ctx, mock.AnythingOfType("*gorm.DB"), courseB.CourseID).
		Return(int64(0), nil).Once()

	svc := NewCourseService(db, courseRepo, enrollmentRepo, new(mocks.ProgressRepository))
	items, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].EnrollmentCount)
	assert.Equal(t, int64(0), items[1].EnrollmentCount)
	courseRepo.AssertExpectations(t)
	enrollmentRepo.AssertExpectations(t)
}

func Test_courseService_UpdateCourse(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	courseID := uuid.New()

	t.Run("full update replaces topics", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		existing := &model.Course{
			CourseID: courseID,
			Title:    "Old",
			Topics:   datatypes.NewJSONSlice([]string{"old"}),
		}
		courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
			Return(existing, nil).Once()
		courseRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Course")).
			Run(func(args mock.Arguments) {
				course := args.Get(2).(*model.Course)
				assert.Equal(t, "New", course.Title)
				assert.Equal(t, []string{"a", "b"}, []string(course.Topics))
			}).Return(nil).Once()

		svc := NewCourseService(db, courseRepo, new(mocks.EnrollmentRepository), new(mocks.ProgressRepository))
		course, err := svc.UpdateCourse(ctx, courseID, &model.UpdateCourseRequest{
			Title:       "New",
			Description: "Desc",
			Topics:      []string{"a", "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, "New", course.Title)
		courseRepo.AssertExpectations(t)
	})

	t.Run("unknown course", func(t *testing.T) {
		courseRepo := new(mocks.CourseRepository)
		courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewCourseService(db, courseRepo, new(mocks.EnrollmentRepository), new(mocks.ProgressRepository))
		_, err := svc.UpdateCourse(ctx, courseID, &model.UpdateCourseRequest{Title: "T", Description: "D"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_courseService_DeleteCourse(t *testing.T) {
	ctx := context.Background()
	courseID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(courseRepo *mocks.CourseRepository, enrollmentRepo *mocks.EnrollmentRepository, progressRepo *mocks.ProgressRepository)
		wantErr   error
	}{
		{
			name: "cascade deletes enrollments and progress",
			setupMock: func(courseRepo *mocks.CourseRepository, enrollmentRepo *mocks.EnrollmentRepository, progressRepo *mocks.ProgressRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(&model.Course{CourseID: courseID}, nil).Once()
				enrollmentRepo.On("DeleteByCourse", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(nil).Once()
				progressRepo.On("DeleteByCourse", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(nil).Once()
				courseRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(nil).Once()
			},
		},
		{
			name: "unknown course is 404, nothing else touched",
			setupMock: func(courseRepo *mocks.CourseRepository, enrollmentRepo *mocks.EnrollmentRepository, progressRepo *mocks.ProgressRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "enrollment delete failure rolls back",
			setupMock: func(courseRepo *mocks.CourseRepository, enrollmentRepo *mocks.EnrollmentRepository, progressRepo *mocks.ProgressRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(&model.Course{CourseID: courseID}, nil).Once()
				enrollmentRepo.On("DeleteByCourse", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(errors.New("db down")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			courseRepo := new(mocks.CourseRepository)
			enrollmentRepo := new(mocks.EnrollmentRepository)
			progressRepo := new(mocks.ProgressRepository)
			tt.setupMock(courseRepo, enrollmentRepo, progressRepo)

			svc := NewCourseService(db, courseRepo, enrollmentRepo, progressRepo)
			err := svc.DeleteCourse(ctx, courseID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			courseRepo.AssertExpectations(t)
			enrollmentRepo.AssertExpectations(t)
			progressRepo.AssertExpectations(t)
		})
	}
}
