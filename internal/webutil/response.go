package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ameer1428/ElevateU/internal/model"
)

// RespondWithJSON writes payload as a JSON response with the given status.
// A nil payload writes only the header.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// HandleError maps err to an HTTP status and writes the standard error body.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		appErr = model.NewAppError("INTERNAL_SERVER_ERROR", "An unexpected error occurred.", "", err)
	}

	if statusCode >= 500 {
		logger.Error("Server error", "error", err, "code", appErr.Code)
	} else {
		logger.Warn("Client error", "error", err, "code", appErr.Code)
	}

	RespondWithJSON(w, statusCode, model.APIErrorResponse{Error: appErr.Detail()}, logger)
}

// MapErrorToStatusCode resolves the sentinel wrapped in err to a status code.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
