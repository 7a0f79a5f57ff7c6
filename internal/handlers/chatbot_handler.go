package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Ameer1428/ElevateU/internal/middleware"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/service"
	"github.com/Ameer1428/ElevateU/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ChatbotHandler struct {
	service service.ChatbotService
	logger  *slog.Logger
}

func NewChatbotHandler(s service.ChatbotService, logger *slog.Logger) *ChatbotHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatbotHandler{
		service: s,
		logger:  logger,
	}
}

func (h *ChatbotHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SendMessage"))

	var req model.ChatbotMessageRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SendMessage(r.Context(), &req)
	if err != nil {
		logger.Error("Error handling chatbot message in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *ChatbotHandler) GetSessionHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSessionHistory"))

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		appErr := model.NewAppError("INVALID_INPUT", "Session id is required.", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	externalID, err := middleware.GetExternalIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	history, err := h.service.GetSessionHistory(r.Context(), sessionID, externalID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, history, logger)
}

func (h *ChatbotHandler) ListUserSessions(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListUserSessions"))

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_INPUT", "Invalid user id format.", "user_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	sessions, err := h.service.ListUserSessions(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, sessions, logger)
}
