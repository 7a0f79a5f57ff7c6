package service

import (
	"context"
	"testing"

	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func Test_adminService_GetStats(t *testing.T) {
	ctx := context.Background()

	userA := uuid.New()
	userB := uuid.New()
	courseX := uuid.New()
	courseY := uuid.New()

	tests := []struct {
		name      string
		setupMock func(userRepo *mocks.UserRepository, courseRepo *mocks.CourseRepository, enrollmentRepo *mocks.EnrollmentRepository, progressRepo *mocks.ProgressRepository)
		want      model.AdminStats
	}{
		{
			name: "empty platform",
			setupMock: func(userRepo *mocks.UserRepository, courseRepo *mocks.CourseRepository, enrollmentRepo *mocks.EnrollmentRepository, progressRepo *mocks.ProgressRepository) {
				courseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Course{}, nil).Once()
				enrollmentRepo.On("CountDistinctUsers", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(int64(0), nil).Once()
				enrollmentRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Enrollment{}, nil).Once()
				progressRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Progress{}, nil).Once()
			},
			want: model.AdminStats{},
		},
		{
			name: "avg completion counts enrollments without progress as zero",
			setupMock: func(userRepo *mocks.UserRepository, courseRepo *mocks.CourseRepository, enrollmentRepo *mocks.EnrollmentRepository, progressRepo *mocks.ProgressRepository) {
				courseRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Course{{CourseID: courseX}, {CourseID: courseY}}, nil).Once()
				enrollmentRepo.On("CountDistinctUsers", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(int64(2), nil).Once()
				enrollmentRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Enrollment{
						{UserID: userA, CourseID: courseX},
						{UserID: userB, CourseID: courseX},
					}, nil).Once()
				// One fully complete, one with no progress row: (100+0)/2 = 50.
				progressRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
					Return([]*model.Progress{
						{UserID: userA, CourseID: courseX, Progress: 100},
					}, nil).Once()
			},
			want: model.AdminStats{
				TotalCourses:     2,
				ActiveStudents:   2,
				TotalEnrollments: 2,
				AvgCompletion:    50,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			userRepo := new(mocks.UserRepository)
			courseRepo := new(mocks.CourseRepository)
			enrollmentRepo := new(mocks.EnrollmentRepository)
			progressRepo := new(mocks.ProgressRepository)
			tt.setupMock(userRepo, courseRepo, enrollmentRepo, progressRepo)

			svc := NewAdminService(db, userRepo, courseRepo, enrollmentRepo, progressRepo, nil, nil)
			stats, err := svc.GetStats(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, *stats)
			courseRepo.AssertExpectations(t)
			enrollmentRepo.AssertExpectations(t)
			progressRepo.AssertExpectations(t)
		})
	}
}

func Test_adminService_ListStudents(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	student := &model.User{UserID: uuid.New(), Name: "Jane", Role: model.RoleStudent}
	course := &model.Course{
		CourseID: uuid.New(),
		Title:    "Go 101",
		Topics:   datatypes.NewJSONSlice([]string{"a", "b", "c"}),
	}

	userRepo := new(mocks.UserRepository)
	courseRepo := new(mocks.CourseRepository)
	enrollmentRepo := new(mocks.EnrollmentRepository)
	progressRepo := new(mocks.ProgressRepository)

	userRepo.On("FindByRole", ctx, mock.AnythingOfType("*gorm.DB"), model.RoleStudent).
		Return([]*model.User{student}, nil).Once()
	enrollmentRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), student.UserID).
		Return([]*model.Enrollment{{UserID: student.UserID, CourseID: course.CourseID}}, nil).Once()
	progressRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), student.UserID).
		Return([]*model.Progress{{
			UserID:          student.UserID,
			CourseID:        course.CourseID,
			CompletedTopics: datatypes.NewJSONSlice([]int{0, 1}),
			Progress:        67,
		}}, nil).Once()
	courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), course.CourseID).
		Return(course, nil).Once()

	svc := NewAdminService(db, userRepo, courseRepo, enrollmentRepo, progressRepo, nil, nil)
	students, err := svc.ListStudents(ctx)

	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 1, students[0].EnrollmentCount)
	assert.Equal(t, 67, students[0].AvgProgress)
	require.Len(t, students[0].CourseProgress, 1)
	row := students[0].CourseProgress[0]
	assert.Equal(t, "Go 101", row.CourseTitle)
	assert.Equal(t, 2, row.CompletedTopics)
	assert.Equal(t, 3, row.TotalTopics)
	assert.Equal(t, 67, row.Progress)
}
