package middleware

import (
	"context"
	"net/http"

	"github.com/Ameer1428/ElevateU/internal/config"
	"github.com/Ameer1428/ElevateU/internal/model"
	"github.com/Ameer1428/ElevateU/internal/webutil"
)

// UserResolver looks up the local user for an identity-provider subject id.
// Declared here (rather than importing the service package) to avoid an
// import cycle; service.UserService satisfies it.
type UserResolver interface {
	GetUserByExternalID(ctx context.Context, externalID string) (*model.User, error)
}

// RequireAdmin gates admin-only routes. A request passes when it carries the
// configured X-Admin-Key, or when the authenticated user has the admin role.
func RequireAdmin(resolver UserResolver, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			if key := r.Header.Get("X-Admin-Key"); key != "" && cfg.Admin.APIKey != "" && key == cfg.Admin.APIKey {
				next.ServeHTTP(w, r)
				return
			}

			externalID, err := GetExternalIDFromContext(r.Context())
			if err != nil {
				logger.Warn("Admin gate: no authenticated user in context")
				appErr := model.NewAppError("FORBIDDEN", "Admin access required.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			user, err := resolver.GetUserByExternalID(r.Context(), externalID)
			if err != nil || user.Role != model.RoleAdmin {
				logger.Warn("Admin gate: user is not an admin", "external_id", externalID)
				appErr := model.NewAppError("FORBIDDEN", "Admin access required.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
