package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"itinerary/internal/domain"
	"itinerary/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
// Unexpected errors are logged and hidden behind a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode() < http.StatusInternalServerError {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	default:
		logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", httputil.RequestID(r.Context()),
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
