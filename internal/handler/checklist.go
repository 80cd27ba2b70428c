package handler

import (
	"log/slog"
	"net/http"

	"itinerary/internal/domain/models"
	"itinerary/internal/domain/services"
	"itinerary/internal/httputil"
)

// ChecklistHandler handles checklist HTTP requests
type ChecklistHandler struct {
	checklistService services.ChecklistService
	logger           *slog.Logger
}

// NewChecklistHandler creates a new checklist handler
func NewChecklistHandler(checklistService services.ChecklistService, logger *slog.Logger) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService: checklistService,
		logger:           logger,
	}
}

// CreateChecklist creates a checklist owned by the caller
// POST /api/checklists
func (h *ChecklistHandler) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	var req services.CreateChecklistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	checklist, err := h.checklistService.CreateChecklist(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, checklist)
}

// UpdateChecklist replaces title and/or items
// PATCH /api/checklists/{id}
func (h *ChecklistHandler) UpdateChecklist(w http.ResponseWriter, r *http.Request) {
	checklist, ok := httputil.ResourceFrom[*models.Checklist](r)
	if !ok {
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var req services.UpdateChecklistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.checklistService.UpdateChecklist(r.Context(), checklist, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, updated)
}

// DeleteChecklist deletes a checklist
// DELETE /api/checklists/{id}
func (h *ChecklistHandler) DeleteChecklist(w http.ResponseWriter, r *http.Request) {
	checklist, ok := httputil.ResourceFrom[*models.Checklist](r)
	if !ok {
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.checklistService.DeleteChecklist(r.Context(), checklist); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
