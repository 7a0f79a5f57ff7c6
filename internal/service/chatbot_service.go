package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Ameer1428/ElevateU/internal/config"
	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	responseTypeAgent    = "agent"
	responseTypeFallback = "fallback"
)

type ChatbotService interface {
	// SendMessage forwards the user's message to the conversational agent
	// (falling back to canned answers when the agent is unreachable) and
	// appends both turns to the session transcript.
	SendMessage(ctx context.Context, req *model.ChatbotMessageRequest) (*model.ChatbotMessageResponse, error)
	// GetSessionHistory returns the transcript of a session owned by the
	// caller (identified by the identity-provider subject).
	GetSessionHistory(ctx context.Context, sessionID, externalID string) (*model.ChatSessionHistoryResponse, error)
	ListUserSessions(ctx context.Context, userID uuid.UUID) ([]*model.ChatSessionHistoryResponse, error)
}

type chatbotService struct {
	db             *gorm.DB
	chatRepo       repository.ChatSessionRepository
	userRepo       repository.UserRepository
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
	cfg            *config.Config
	httpClient     *http.Client
}

func NewChatbotService(db *gorm.DB, chatRepo repository.ChatSessionRepository, userRepo repository.UserRepository, courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository, progressRepo repository.ProgressRepository, cfg *config.Config) ChatbotService {
	return &chatbotService{
		db:             db,
		chatRepo:       chatRepo,
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		cfg:            cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Chatbot.TimeoutSeconds) * time.Second,
		},
	}
}

func (s *chatbotService) SendMessage(ctx context.Context, req *model.ChatbotMessageRequest) (*model.ChatbotMessageResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, req.UserID)
	if err != nil {
		return nil, err
	}

	learningCtx, err := s.buildLearningContext(ctx, user)
	if err != nil {
		logger.Warn("Failed to build learning context, continuing without it", "error", err)
		learningCtx = nil
	}

	responseText, responseType := s.askAgent(ctx, req.Message, learningCtx)
	if responseText == "" {
		responseText = s.fallbackResponse(req.Message, user, learningCtx)
		responseType = responseTypeFallback
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "session_" + uuid.NewString()
	}

	now := time.Now()
	userName := req.UserName
	if userName == "" {
		userName = user.Name
	}

	if err := s.appendToSession(ctx, sessionID, user.UserID, userName, []model.ChatMessage{
		{Type: model.ChatMessageTypeUser, Content: req.Message, Timestamp: now},
		{Type: model.ChatMessageTypeBot, Content: responseText, Timestamp: now},
	}); err != nil {
		if errors.Is(err, model.ErrForbidden) {
			return nil, err
		}
		logger.Error("Failed to persist chat session", "error", err, "session_id", sessionID)
		return nil, model.ErrInternalServer
	}

	return &model.ChatbotMessageResponse{
		Response:     responseText,
		ResponseType: responseType,
		ContextUsed:  learningCtx != nil,
		SessionID:    sessionID,
		UserID:       user.UserID,
		Timestamp:    now,
	}, nil
}

func (s *chatbotService) buildLearningContext(ctx context.Context, user *model.User) (*model.LearningContext, error) {
	enrollments, err := s.enrollmentRepo.FindByUser(ctx, s.db, user.UserID)
	if err != nil {
		return nil, err
	}
	progressRows, err := s.progressRepo.FindByUser(ctx, s.db, user.UserID)
	if err != nil {
		return nil, err
	}
	progressByCourse := make(map[uuid.UUID]*model.Progress, len(progressRows))
	for _, p := range progressRows {
		progressByCourse[p.CourseID] = p
	}

	enrolled := make(map[uuid.UUID]bool, len(enrollments))
	courseProgress := make([]*model.CourseProgressSummary, 0, len(enrollments))
	sum := 0
	for _, e := range enrollments {
		enrolled[e.CourseID] = true
		course, err := s.courseRepo.FindByID(ctx, s.db, e.CourseID)
		if err != nil {
			continue
		}
		row := &model.CourseProgressSummary{
			CourseID:    course.CourseID,
			CourseTitle: course.Title,
			TotalTopics: len(course.Topics),
		}
		if p := progressByCourse[e.CourseID]; p != nil {
			row.Progress = p.Progress
			row.CompletedTopics = len(p.CompletedTopics)
		}
		sum += row.Progress
		courseProgress = append(courseProgress, row)
	}

	avgProgress := 0
	if len(enrollments) > 0 {
		avgProgress = int(math.Round(float64(sum) / float64(len(enrollments))))
	}

	// Recommend catalog entries the user has not enrolled in yet.
	allCourses, err := s.courseRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	recommendations := make([]*model.Course, 0, s.cfg.App.RecommendLimit)
	for _, course := range allCourses {
		if enrolled[course.CourseID] {
			continue
		}
		recommendations = append(recommendations, course)
		if len(recommendations) >= s.cfg.App.RecommendLimit {
			break
		}
	}

	return &model.LearningContext{
		User:             user,
		TotalEnrollments: len(enrollments),
		AverageProgress:  avgProgress,
		CourseProgress:   courseProgress,
		Recommendations:  recommendations,
	}, nil
}

// askAgent posts the message and context to the external conversational
// agent. An empty response string signals the caller to use the fallback.
func (s *chatbotService) askAgent(ctx context.Context, message string, learningCtx *model.LearningContext) (string, string) {
	logger := middleware.GetLogger(ctx)

	if s.cfg.Chatbot.AgentURL == "" {
		return "", ""
	}

	payload := map[string]interface{}{
		"message": message,
		"context": learningCtx,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal agent payload", "error", err)
		return "", ""
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Chatbot.AgentURL, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to build agent request", "error", err)
		return "", ""
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn("Conversational agent unreachable, using fallback", "error", err)
		return "", ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Conversational agent returned non-OK status", "status", resp.StatusCode)
		return "", ""
	}

	var agentResp struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&agentResp); err != nil {
		logger.Warn("Failed to decode agent response", "error", err)
		return "", ""
	}
	return agentResp.Response, responseTypeAgent
}

// fallbackResponse answers from the learning context with simple keyword
// rules when the agent is unavailable.
func (s *chatbotService) fallbackResponse(message string, user *model.User, learningCtx *model.LearningContext) string {
	lowered := strings.ToLower(message)

	switch {
	case strings.Contains(lowered, "progress"):
		if learningCtx != nil && learningCtx.TotalEnrollments > 0 {
			return fmt.Sprintf("You are enrolled in %d course(s) with an average progress of %d%%. Keep it up!",
				learningCtx.TotalEnrollments, learningCtx.AverageProgress)
		}
		return "You are not enrolled in any courses yet. Browse the catalog to get started!"

	case strings.Contains(lowered, "recommend") || strings.Contains(lowered, "course"):
		if learningCtx != nil && len(learningCtx.Recommendations) > 0 {
			titles := make([]string, 0, len(learningCtx.Recommendations))
			for _, c := range learningCtx.Recommendations {
				titles = append(titles, c.Title)
			}
			return "Based on the catalog, you might like: " + strings.Join(titles, ", ") + "."
		}
		return "You are already enrolled in every available course. Great job!"

	case strings.Contains(lowered, "hello") || strings.Contains(lowered, "hi"):
		return fmt.Sprintf("Hello %s! Ask me about your progress or course recommendations.", user.Name)

	default:
		return "I can help you with your course progress and recommendations. Try asking \"how is my progress?\""
	}
}

func (s *chatbotService) appendToSession(ctx context.Context, sessionID string, userID uuid.UUID, userName string, turns []model.ChatMessage) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.chatRepo.Find(ctx, tx, sessionID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		if session != nil && session.UserID != userID {
			// A session id names someone else's transcript; refusing here
			// keeps users from extending transcripts they do not own.
			return model.ErrForbidden
		}
		if session == nil {
			session = &model.ChatSession{
				SessionID: sessionID,
				UserID:    userID,
				UserName:  userName,
			}
		}

		var messages []model.ChatMessage
		if len(session.Messages) > 0 {
			if err := json.Unmarshal(session.Messages, &messages); err != nil {
				return fmt.Errorf("corrupt session transcript: %w", err)
			}
		}
		messages = append(messages, turns...)

		raw, err := json.Marshal(messages)
		if err != nil {
			return err
		}
		session.Messages = datatypes.JSON(raw)
		session.UserName = userName

		return s.chatRepo.Save(ctx, tx, session)
	})
}

func (s *chatbotService) GetSessionHistory(ctx context.Context, sessionID, externalID string) (*model.ChatSessionHistoryResponse, error) {
	session, err := s.chatRepo.Find(ctx, s.db, sessionID)
	if err != nil {
		return nil, err
	}

	caller, err := s.userRepo.FindByExternalID(ctx, s.db, externalID)
	if err != nil {
		return nil, err
	}
	if session.UserID != caller.UserID {
		return nil, model.ErrForbidden
	}

	return toHistoryResponse(session)
}

func (s *chatbotService) ListUserSessions(ctx context.Context, userID uuid.UUID) ([]*model.ChatSessionHistoryResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, s.db, userID); err != nil {
		return nil, err
	}

	sessions, err := s.chatRepo.FindByUser(ctx, s.db, userID, s.cfg.App.SessionLimit)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	result := make([]*model.ChatSessionHistoryResponse, 0, len(sessions))
	for _, session := range sessions {
		history, err := toHistoryResponse(session)
		if err != nil {
			return nil, model.ErrInternalServer
		}
		result = append(result, history)
	}
	return result, nil
}

func toHistoryResponse(session *model.ChatSession) (*model.ChatSessionHistoryResponse, error) {
	var messages []model.ChatMessage
	if len(session.Messages) > 0 {
		if err := json.Unmarshal(session.Messages, &messages); err != nil {
			return nil, fmt.Errorf("corrupt session transcript: %w", err)
		}
	}
	return &model.ChatSessionHistoryResponse{
		SessionID: session.SessionID,
		UserID:    session.UserID,
		UserName:  session.UserName,
		Messages:  messages,
	}, nil
}
