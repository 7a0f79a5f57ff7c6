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

func Test_progressService_GetProgress(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userID := uuid.New()
	courseID := uuid.New()

	t.Run("absent until first toggle", func(t *testing.T) {
		progressRepo := new(mocks.ProgressRepository)
		progressRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, courseID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewProgressService(db, progressRepo, new(mocks.CourseRepository))
		_, err := svc.GetProgress(ctx, userID, courseID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("existing row returned", func(t *testing.T) {
		progressRepo := new(mocks.ProgressRepository)
		row := &model.Progress{ProgressID: uuid.New(), UserID: userID, CourseID: courseID, Progress: 67}
		progressRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, courseID).
			Return(row, nil).Once()

		svc := NewProgressService(db, progressRepo, new(mocks.CourseRepository))
		got, err := svc.GetProgress(ctx, userID, courseID)
		require.NoError(t, err)
		assert.Equal(t, row, got)
	})
}

func Test_progressService_UpsertProgress(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()

	threeTopicCourse := &model.Course{
		CourseID: courseID,
		Title:    "Go 101",
		Topics:   datatypes.NewJSONSlice([]string{"intro", "basics", "advanced"}),
	}

	tests := []struct {
		name        string
		req         *model.UpsertProgressRequest
		setupMock   func(progressRepo *mocks.ProgressRepository, courseRepo *mocks.CourseRepository)
		wantErr     error
		wantPercent int
		wantTopics  []int
	}{
		{
			name: "first toggle creates the row at 33 percent",
			req:  &model.UpsertProgressRequest{UserID: userID, CourseID: courseID, CompletedTopics: []int{0}},
			setupMock: func(progressRepo *mocks.ProgressRepository, courseRepo *mocks.CourseRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(threeTopicCourse, nil).Once()
				progressRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, courseID).
					Return(nil, model.ErrNotFound).Once()
				progressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).
					Return(nil).Once()
			},
			wantPercent: 33,
			wantTopics:  []int{0},
		},
		{
			name: "two of three rounds to 67 percent",
			req:  &model.UpsertProgressRequest{UserID: userID, CourseID: courseID, CompletedTopics: []int{0, 2}},
			setupMock: func(progressRepo *mocks.ProgressRepository, courseRepo *mocks.CourseRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(threeTopicCourse, nil).Once()
				progressRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, courseID).
					Return(nil, model.ErrNotFound).Once()
				progressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).
					Return(nil).Once()
			},
			wantPercent: 67,
			wantTopics:  []int{0, 2},
		},
		{
			name: "existing row replaced wholesale, duplicates collapsed",
			req:  &model.UpsertProgressRequest{UserID: userID, CourseID: courseID, CompletedTopics: []int{1, 1, 2}},
			setupMock: func(progressRepo *mocks.ProgressRepository, courseRepo *mocks.CourseRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(threeTopicCourse, nil).Once()
				progressRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, courseID).
					Return(&model.Progress{
						ProgressID:      uuid.New(),
						UserID:          userID,
						CourseID:        courseID,
						CompletedTopics: datatypes.NewJSONSlice([]int{0, 1, 2}),
						Progress:        100,
					}, nil).Once()
				progressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).
					Return(nil).Once()
			},
			wantPercent: 67,
			wantTopics:  []int{1, 2},
		},
		{
			name: "empty set resets to zero but keeps the row",
			req:  &model.UpsertProgressRequest{UserID: userID, CourseID: courseID, CompletedTopics: []int{}},
			setupMock: func(progressRepo *mocks.ProgressRepository, courseRepo *mocks.CourseRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(threeTopicCourse, nil).Once()
				progressRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, courseID).
					Return(&model.Progress{
						ProgressID:      uuid.New(),
						UserID:          userID,
						CourseID:        courseID,
						CompletedTopics: datatypes.NewJSONSlice([]int{0}),
						Progress:        33,
					}, nil).Once()
				progressRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).
					Return(nil).Once()
			},
			wantPercent: 0,
			wantTopics:  []int{},
		},
		{
			name: "topicless course always reads zero",
			req:  &model.UpsertProgressRequest{UserID: userID, CourseID: courseID, CompletedTopics: []int{0, 1}},
			setupMock: func(progressRepo *mocks.ProgressRepository, courseRepo *mocks.CourseRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(&model.Course{CourseID: courseID, Title: "Empty"}, nil).Once()
				progressRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, courseID).
					Return(nil, model.ErrNotFound).Once()
				progressRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Progress")).
					Return(nil).Once()
			},
			wantPercent: 0,
			wantTopics:  []int{0, 1},
		},
		{
			name: "unknown course is 404",
			req:  &model.UpsertProgressRequest{UserID: userID, CourseID: courseID, CompletedTopics: []int{0}},
			setupMock: func(progressRepo *mocks.ProgressRepository, courseRepo *mocks.CourseRepository) {
				courseRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), courseID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			progressRepo := new(mocks.ProgressRepository)
			courseRepo := new(mocks.CourseRepository)
			tt.setupMock(progressRepo, courseRepo)

			svc := NewProgressService(db, progressRepo, courseRepo)
			progress, err := svc.UpsertProgress(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, progress)
				assert.Equal(t, tt.wantPercent, progress.Progress)
				assert.Equal(t, tt.wantTopics, []int(progress.CompletedTopics))
				assert.False(t, progress.LastUpdated.IsZero())
			}
			progressRepo.AssertExpectations(t)
			courseRepo.AssertExpectations(t)
		})
	}
}
