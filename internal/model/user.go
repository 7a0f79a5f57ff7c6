package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the local record for an identity-provider account. ExternalID is
// the provider's subject id and uniquely identifies exactly one User.
type User struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ExternalID string    `gorm:"uniqueIndex;not null" json:"external_id"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Name       string    `gorm:"not null" json:"name"`
	Role       string    `gorm:"not null;default:student" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// SyncUserRequest is the identity-sync payload. The external id itself comes
// from the authenticated request context, never from the body.
type SyncUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=student admin"`
}

// UpdateUserRequest is the admin-only partial update payload.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Role  *string `json:"role,omitempty" validate:"omitempty,oneof=student admin"`
}

type ContextKey string

const (
	// ExternalIDKey holds the identity provider subject id for the request.
	ExternalIDKey ContextKey = "externalID"
)
