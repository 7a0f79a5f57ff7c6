package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Progress records which topic indices a user has completed in a course,
// plus the derived completion percentage. A row exists only once the user
// has toggled at least one topic; clients read its absence as "no progress
// yet".
type Progress struct {
	ProgressID      uuid.UUID                `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID          uuid.UUID                `gorm:"type:uuid;not null;index:uq_user_course_progress,unique" json:"user_id"`
	CourseID        uuid.UUID                `gorm:"type:uuid;not null;index:uq_user_course_progress,unique" json:"course_id"`
	CompletedTopics datatypes.JSONSlice[int] `json:"completed_topics"`
	Progress        int                      `gorm:"not null;default:0" json:"progress"`
	LastUpdated     time.Time                `gorm:"not null" json:"last_updated"`
}

func (Progress) TableName() string {
	return "progress"
}

// UpsertProgressRequest replaces the completed-topic set wholesale: the
// client sends the full next set, not a delta.
type UpsertProgressRequest struct {
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	CourseID        uuid.UUID `json:"course_id" validate:"required"`
	CompletedTopics []int     `json:"completed_topics"`
}

// CompletionPercent derives the rounded percentage of completed topics.
// A course with no topics always reads as zero.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// DedupeTopicIndices enforces set semantics on a completed-topic list while
// preserving the order of first occurrence.
func DedupeTopicIndices(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}
