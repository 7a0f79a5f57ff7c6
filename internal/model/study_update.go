package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyUpdate is a free-text log entry a student submits about study
// activity. An admin can verify it and leave a comment.
type StudyUpdate struct {
	UpdateID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"update_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Content      string    `gorm:"not null" json:"content"`
	Date         time.Time `gorm:"not null" json:"date"`
	Verified     bool      `gorm:"not null;default:false" json:"verified"`
	AdminComment *string   `json:"admin_comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (StudyUpdate) TableName() string {
	return "study_updates"
}

type CreateStudyUpdateRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	CourseID uuid.UUID `json:"course_id" validate:"required"`
	Content  string    `json:"content" validate:"required,min=1"`
	// Date defaults to now when omitted.
	Date *time.Time `json:"date,omitempty"`
}

type VerifyStudyUpdateRequest struct {
	AdminComment string `json:"admin_comment,omitempty"`
}

// StudyUpdateWithCourse is the read shape for student-facing listings and
// the admin drill-down.
type StudyUpdateWithCourse struct {
	StudyUpdate
	Course *Course `json:"course,omitempty"`
}
