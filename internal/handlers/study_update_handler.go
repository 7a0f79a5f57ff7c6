package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/service"
	"github.com/Ameer1428/ElevateU/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type StudyUpdateHandler struct {
	service service.StudyUpdateService
	logger  *slog.Logger
}

func NewStudyUpdateHandler(s service.StudyUpdateService, logger *slog.Logger) *StudyUpdateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyUpdateHandler{
		service: s,
		logger:  logger,
	}
}

func (h *StudyUpdateHandler) CreateStudyUpdate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateStudyUpdate"))

	var req model.CreateStudyUpdateRequest
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

	update, err := h.service.CreateStudyUpdate(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating study update in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, update, logger)
}

func (h *StudyUpdateHandler) ListUserStudyUpdates(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListUserStudyUpdates"))

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_INPUT", "Invalid user id format.", "user_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	updates, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, updates, logger)
}

// VerifyStudyUpdate is the admin verification endpoint; verifying twice is a
// no-op.
func (h *StudyUpdateHandler) VerifyStudyUpdate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "VerifyStudyUpdate"))

	updateID, err := uuid.Parse(chi.URLParam(r, "updateID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_INPUT", "Invalid update id format.", "update_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.VerifyStudyUpdateRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	update, err := h.service.VerifyStudyUpdate(r.Context(), updateID, &req)
	if err != nil {
		logger.Error("Error verifying study update in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, update, logger)
}
