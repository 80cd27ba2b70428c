package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"itinerary/internal/auth"
	"itinerary/internal/domain/models"
	"itinerary/internal/httputil"
)

// AuthMiddleware verifies the bearer token and attaches the caller's identity.
// Requests without a valid token are rejected with 401 unless the route is public.
func AuthMiddleware(verifier auth.TokenVerifier, logger *slog.Logger, public ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			if header == "" && isPublic(r, public) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("authentication failed",
					"path", r.URL.Path,
					"request_id", httputil.RequestID(r.Context()),
				)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, models.IdentityFromClaims(claims)))
		})
	}
}

// isPublic matches "METHOD /path" or "METHOD /prefix/*" entries
func isPublic(r *http.Request, public []string) bool {
	for _, entry := range public {
		method, path, ok := strings.Cut(entry, " ")
		if !ok || method != r.Method {
			continue
		}
		if prefix, wildcard := strings.CutSuffix(path, "*"); wildcard {
			if strings.HasPrefix(r.URL.Path, prefix) {
				return true
			}
		} else if r.URL.Path == path {
			return true
		}
	}
	return false
}
