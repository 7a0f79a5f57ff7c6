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

type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  *slog.Logger
}

func NewEnrollmentHandler(s service.EnrollmentService, logger *slog.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollmentHandler{
		service: s,
		logger:  logger,
	}
}

// Enroll registers a user in a course. Re-enrolling returns the existing row
// with 200 instead of an error.
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Enroll"))

	var req model.EnrollRequest
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

	enrollment, created, err := h.service.Enroll(r.Context(), &req)
	if err != nil {
		logger.Error("Error enrolling in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	webutil.RespondWithJSON(w, status, enrollment, logger)
}

// ListUserEnrollments returns the user's enrollments joined with course and
// progress data.
func (h *EnrollmentHandler) ListUserEnrollments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListUserEnrollments"))

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_INPUT", "Invalid user id format.", "user_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	enrollments, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, enrollments, logger)
}
