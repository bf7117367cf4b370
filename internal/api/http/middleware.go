package http

import (
	"net/http"

	"memberhub-backend/internal/logger"
	"memberhub-backend/internal/security"
)

const adminSecretHeader = "X-Admin-Secret"

// AdminOnly gates administrative endpoints behind the shared secret. The
// check runs before any handler logic, so a bad secret never touches the
// store.
func AdminOnly(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(adminSecretHeader)
			if presented == "" || !security.SecretsEqual(presented, secret) {
				logger.Warn("Rejected admin request", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
