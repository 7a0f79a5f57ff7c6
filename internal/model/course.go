package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Course is one catalog entry. Topics are an ordered list; a topic is
// referenced elsewhere by its position in this list.
type Course struct {
	CourseID    uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"course_id"`
	Title       string                       `gorm:"not null" json:"title"`
	Description string                       `gorm:"not null" json:"description"`
	Instructor  string                       `json:"instructor"`
	Duration    string                       `json:"duration"`
	Topics      datatypes.JSONSlice[string]  `json:"topics"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseListItem decorates a catalog entry with its enrollment count.
type CourseListItem struct {
	*Course
	EnrollmentCount int64 `json:"enrollment_count"`
}

type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required,min=1"`
	Instructor  string   `json:"instructor,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	// TopicsText is an alternative free-text form: one topic per line,
	// commas also accepted.
	TopicsText string `json:"topics_text,omitempty"`
}

type UpdateCourseRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required,min=1"`
	Instructor  string   `json:"instructor,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Topics      []string `json:"topics,omitempty"`
	TopicsText  string   `json:"topics_text,omitempty"`
}

// ParseTopics normalizes a topic list: free text is split on newlines and
// commas, entries are trimmed, blanks dropped. Order is preserved.
func ParseTopics(topics []string, text string) []string {
	raw := topics
	if len(raw) == 0 && text != "" {
		raw = strings.FieldsFunc(text, func(r rune) bool {
			return r == '\n' || r == ','
		})
	}
	clean := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			clean = append(clean, t)
		}
	}
	return clean
}
