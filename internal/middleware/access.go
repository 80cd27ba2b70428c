package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"itinerary/internal/domain/models"
	"itinerary/internal/domain/services"
	"itinerary/internal/httputil"
	"itinerary/internal/service/access"
)

// RequireAccess guards a route whose {id} path value names a resource of kind R.
// It is bound to one authorizer at route registration; on allow the fetched
// resource is attached to the request for httputil.ResourceFrom.
func RequireAccess[R models.OwnedResource](authorizer services.ResourceAuthorizer[R], logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := httputil.GetIdentity(r)
			if !ok {
				// AuthMiddleware should have rejected the request already
				logger.Error("access guard reached without identity",
					"kind", authorizer.Kind(),
					"path", r.URL.Path,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			rawID := r.PathValue("id")
			resource, err := authorizer.Authorize(r.Context(), rawID, caller)
			if err != nil {
				respondAccessError(w, r, logger, authorizer.Kind(), rawID, caller, err)
				return
			}

			next.ServeHTTP(w, httputil.WithResource(r, resource))
		})
	}
}

func respondAccessError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, kind models.ResourceKind, rawID string, caller models.Identity, err error) {
	var authErr *access.Error
	if !errors.As(err, &authErr) || authErr.Reason == access.ReasonRepositoryFailure {
		logger.Error("access check failed",
			"kind", kind,
			"id", rawID,
			"user_id", caller.ID,
			"request_id", httputil.RequestID(r.Context()),
			"error", err,
		)
		httputil.RespondFault(w, err)
		return
	}

	logger.Debug("access denied",
		"kind", kind,
		"id", rawID,
		"user_id", caller.ID,
		"reason", authErr.Reason.String(),
	)
	httputil.RespondMessage(w, authErr.StatusCode(), authErr.Message())
}
