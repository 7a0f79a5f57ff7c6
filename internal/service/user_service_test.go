package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Ameer1428/ElevateU/internal/config"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite connection used only as the
// transaction carrier; all data access goes through repository mocks.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open sqlite for testing")
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.EmailMarkers = []string{"admin", "demo"}
	cfg.Admin.NameMarkers = []string{"admin", "administrator"}
	return cfg
}

func Test_userService_SyncUser(t *testing.T) {
	ctx := context.Background()
	externalID := "auth0|abc123"

	tests := []struct {
		name        string
		req         *model.SyncUserRequest
		setupMock   func(userRepo *mocks.UserRepository)
		wantErr     error
		wantCreated bool
		wantRole    string
		wantEmail   string
		wantName    string
	}{
		{
			name: "new student account created",
			req:  &model.SyncUserRequest{Email: "jane@example.com", Name: "Jane Doe"},
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), externalID).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "jane@example.com").
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						user := args.Get(2).(*model.User)
						assert.Equal(t, externalID, user.ExternalID)
						assert.NotEqual(t, uuid.Nil, user.UserID)
					}).Return(nil).Once()
			},
			wantCreated: true,
			wantRole:    model.RoleStudent,
		},
		{
			name: "email marker grants admin",
			req:  &model.SyncUserRequest{Email: "admin@example.com", Name: "Jane Doe"},
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), externalID).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "admin@example.com").
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(nil).Once()
			},
			wantCreated: true,
			wantRole:    model.RoleAdmin,
		},
		{
			name: "name marker grants admin",
			req:  &model.SyncUserRequest{Email: "jane@example.com", Name: "Site Administrator"},
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), externalID).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "jane@example.com").
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(nil).Once()
			},
			wantCreated: true,
			wantRole:    model.RoleAdmin,
		},
		{
			name: "explicit student role overrides markers",
			req:  &model.SyncUserRequest{Email: "admin@example.com", Name: "Jane Doe", Role: model.RoleStudent},
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), externalID).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "admin@example.com").
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(nil).Once()
			},
			wantCreated: true,
			wantRole:    model.RoleStudent,
		},
		{
			// A second sync must not touch the stored record: the new
			// email/name are ignored and nothing is written.
			name: "existing account returned unchanged",
			req:  &model.SyncUserRequest{Email: "new@example.com", Name: "New Name", Role: model.RoleAdmin},
			setupMock: func(userRepo *mocks.UserRepository) {
				existing := &model.User{
					UserID:     uuid.New(),
					ExternalID: externalID,
					Email:      "old@example.com",
					Name:       "Old Name",
					Role:       model.RoleStudent,
				}
				userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), externalID).
					Return(existing, nil).Once()
				// No Create and no Update may be issued.
			},
			wantCreated: false,
			wantRole:    model.RoleStudent,
			wantEmail:   "old@example.com",
			wantName:    "Old Name",
		},
		{
			name: "pre-provider account adopted by email",
			req:  &model.SyncUserRequest{Email: "jane@example.com", Name: "Jane Doe"},
			setupMock: func(userRepo *mocks.UserRepository) {
				existing := &model.User{
					UserID: uuid.New(),
					Email:  "jane@example.com",
					Name:   "Jane",
					Role:   model.RoleStudent,
				}
				userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), externalID).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "jane@example.com").
					Return(existing, nil).Once()
				userRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						user := args.Get(2).(*model.User)
						assert.Equal(t, externalID, user.ExternalID)
						assert.Equal(t, "Jane", user.Name)
					}).Return(nil).Once()
			},
			wantCreated: false,
			wantRole:    model.RoleStudent,
			wantName:    "Jane",
		},
		{
			name: "repository error surfaces as internal",
			req:  &model.SyncUserRequest{Email: "jane@example.com", Name: "Jane Doe"},
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), externalID).
					Return(nil, errors.New("db down")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			userRepo := new(mocks.UserRepository)
			tt.setupMock(userRepo)

			svc := NewUserService(db, userRepo, testConfig())
			user, created, err := svc.SyncUser(ctx, externalID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.wantCreated, created)
				assert.Equal(t, tt.wantRole, user.Role)
				if tt.wantEmail != "" {
					assert.Equal(t, tt.wantEmail, user.Email)
				}
				if tt.wantName != "" {
					assert.Equal(t, tt.wantName, user.Name)
				}
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func Test_userService_GetUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userID := uuid.New()
	user := &model.User{UserID: userID, ExternalID: "auth0|xyz", Email: "a@b.com", Name: "A"}

	t.Run("by local uuid", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(user, nil).Once()

		svc := NewUserService(db, userRepo, testConfig())
		got, err := svc.GetUser(ctx, userID.String())
		require.NoError(t, err)
		assert.Equal(t, user, got)
		userRepo.AssertExpectations(t)
	})

	t.Run("by external id", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), "auth0|xyz").
			Return(user, nil).Once()

		svc := NewUserService(db, userRepo, testConfig())
		got, err := svc.GetUser(ctx, "auth0|xyz")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		userRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), "missing").
			Return(nil, model.ErrNotFound).Once()

		svc := NewUserService(db, userRepo, testConfig())
		_, err := svc.GetUser(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
