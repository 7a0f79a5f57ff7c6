package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/webutil"
)

// DevUserContextMiddleware is the development-time stand-in for JWT auth.
// It takes the external user id from the X-User-ID header without any
// signature validation.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		externalID := r.Header.Get("X-User-ID")
		if externalID == "" {
			log.Println("[DEV AUTH] Failed: X-User-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-User-ID header.", "", model.ErrForbidden)
			webutil.HandleError(w, GetLogger(r.Context()), appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.ExternalIDKey, externalID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
