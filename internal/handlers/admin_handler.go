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

type AdminHandler struct {
	service service.AdminService
	logger  *slog.Logger
}

func NewAdminHandler(s service.AdminService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		service: s,
		logger:  logger,
	}
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		logger.Error("Error computing stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

func (h *AdminHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListStudents"))

	students, err := h.service.ListStudents(r.Context())
	if err != nil {
		logger.Error("Error listing students in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, students, logger)
}

func (h *AdminHandler) GetStudentDetail(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudentDetail"))

	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		appErr := model.NewAppError("INVALID_INPUT", "Invalid student id format.", "student_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	detail, err := h.service.GetStudentDetail(r.Context(), studentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}
