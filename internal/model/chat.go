package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ChatMessageTypeUser = "user"
	ChatMessageTypeBot  = "bot"
)

// ChatMessage is one turn in a chat session, stored inside the session's
// messages JSON column.
type ChatMessage struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession groups the messages a user exchanged with the assistant under
// a client-chosen session id.
type ChatSession struct {
	SessionID string         `gorm:"primaryKey" json:"session_id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	UserName  string         `json:"user_name"`
	Messages  datatypes.JSON `json:"messages"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

type ChatbotMessageRequest struct {
	Message   string    `json:"message" validate:"required,min=1"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	UserName  string    `json:"user_name,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
}

type ChatbotMessageResponse struct {
	Response     string    `json:"response"`
	ResponseType string    `json:"response_type"`
	ContextUsed  bool      `json:"context_used"`
	SessionID    string    `json:"session_id"`
	UserID       uuid.UUID `json:"user_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// ChatSessionHistoryResponse is the read shape for one session's transcript.
type ChatSessionHistoryResponse struct {
	SessionID string        `json:"session_id"`
	UserID    uuid.UUID     `json:"user_id"`
	UserName  string        `json:"user_name"`
	Messages  []ChatMessage `json:"messages"`
}

// LearningContext is the summary handed to the external conversational
// agent alongside the user's message.
type LearningContext struct {
	User             *User                    `json:"user"`
	TotalEnrollments int                      `json:"total_enrollments"`
	AverageProgress  int                      `json:"average_progress"`
	CourseProgress   []*CourseProgressSummary `json:"course_progress"`
	Recommendations  []*Course                `json:"recommendations"`
}
