package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Ameer1428/ElevateU/internal/config"
	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	// SyncUser resolves the local user for an identity-provider account,
	// creating it on first contact. An existing record is returned as
	// stored; a repeated sync never rewrites it. The bool reports whether
	// a new record was created.
	SyncUser(ctx context.Context, externalID string, req *model.SyncUserRequest) (*model.User, bool, error)
	// GetUser accepts either a local UUID or an external id.
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*model.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *model.UpdateUserRequest) (*model.User, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// resolveRole decides a new account's role. An explicit admin request wins;
// otherwise the configured email/name markers apply, defaulting to student.
func (s *userService) resolveRole(email, name, requested string) string {
	if requested == model.RoleAdmin {
		return model.RoleAdmin
	}
	if requested == model.RoleStudent {
		return model.RoleStudent
	}

	localPart := strings.ToLower(email)
	if at := strings.Index(localPart, "@"); at >= 0 {
		localPart = localPart[:at]
	}
	for _, marker := range s.cfg.Admin.EmailMarkers {
		if strings.Contains(localPart, strings.ToLower(marker)) {
			return model.RoleAdmin
		}
	}

	loweredName := strings.ToLower(name)
	for _, marker := range s.cfg.Admin.NameMarkers {
		if strings.Contains(loweredName, strings.ToLower(marker)) {
			return model.RoleAdmin
		}
	}

	return model.RoleStudent
}

func (s *userService) SyncUser(ctx context.Context, externalID string, req *model.SyncUserRequest) (*model.User, bool, error) {
	logger := middleware.GetLogger(ctx)

	var syncedUser *model.User
	var created bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByExternalID(ctx, tx, externalID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}
		if user != nil {
			// A repeated sync returns the stored record untouched; the
			// email and name in the request never overwrite it.
			syncedUser = user
			return nil
		}

		// An account created before the identity provider was wired up may
		// exist under the same email. Attach the external id to it instead
		// of violating the email unique index; nothing else changes.
		user, err = s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}
		if user != nil {
			logger.Info("Attaching external id to existing account", "user_id", user.UserID)
			user.ExternalID = externalID
			if err := s.userRepo.Update(ctx, tx, user); err != nil {
				return model.ErrInternalServer
			}
			syncedUser = user
			return nil
		}

		user = &model.User{
			UserID:     uuid.New(),
			ExternalID: externalID,
			Email:      req.Email,
			Name:       req.Name,
			Role:       s.resolveRole(req.Email, req.Name, req.Role),
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return err
			}
			return model.ErrInternalServer
		}
		created = true
		syncedUser = user
		return nil
	})
	if err != nil {
		logger.Error("User sync failed", "error", err, "external_id", externalID)
		return nil, false, err
	}

	return syncedUser, created, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if userID, err := uuid.Parse(id); err == nil {
		return s.userRepo.FindByID(ctx, s.db, userID)
	}
	return s.userRepo.FindByExternalID(ctx, s.db, id)
}

func (s *userService) GetUserByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	return s.userRepo.FindByExternalID(ctx, s.db, externalID)
}

func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, s.db, user); err != nil {
		return nil, model.ErrInternalServer
	}
	return user, nil
}
