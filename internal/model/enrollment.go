package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment is one user's registration in one course. The composite unique
// index keeps at most one row per (user, course) pair.
type Enrollment struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"enrollment_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:uq_user_course,unique" json:"user_id"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;index:uq_user_course,unique" json:"course_id"`
	EnrolledAt   time.Time `gorm:"not null" json:"enrolled_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type EnrollRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

// EnrollmentWithCourse is the dashboard row: the enrollment joined with its
// course and, when the user has toggled at least one topic, the progress.
type EnrollmentWithCourse struct {
	Enrollment
	Course   *Course   `json:"course"`
	Progress *Progress `json:"progress,omitempty"`
}
