package handler

import (
	"log/slog"
	"net/http"
	"time"

	"itinerary/internal/domain/models"
	"itinerary/internal/domain/services"
	"itinerary/internal/httputil"
)

// ScheduleHandler handles schedule HTTP requests.
// Routes with an {id} run behind the access guard, which attaches the schedule.
type ScheduleHandler struct {
	scheduleService services.ScheduleService
	logger          *slog.Logger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService services.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// CreateSchedule creates a schedule owned by the caller
// POST /api/schedules
func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req services.CreateScheduleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	schedule, err := h.scheduleService.CreateSchedule(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, schedule)
}

// ListSchedules lists schedules the caller owns or may edit
// GET /api/schedules
func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.scheduleService.ListSchedules(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, schedules)
}

// GetSchedule returns the authorized schedule
// GET /api/schedules/{id}
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, ok := h.authorized(w, r)
	if !ok {
		return
	}

	httputil.RespondJSON(w, http.StatusOK, schedule)
}

// updateScheduleRequest is the PATCH body; description and dates distinguish absent from null
type updateScheduleRequest struct {
	Title       *string                      `json:"title"`
	Description httputil.OptionalString      `json:"description"`
	StartDate   httputil.Optional[time.Time] `json:"start_date"`
	EndDate     httputil.Optional[time.Time] `json:"end_date"`
}

// UpdateSchedule applies a partial update
// PATCH /api/schedules/{id}
func (h *ScheduleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, ok := h.authorized(w, r)
	if !ok {
		return
	}

	var body updateScheduleRequest
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.scheduleService.UpdateSchedule(r.Context(), schedule, &services.UpdateScheduleRequest{
		Title: body.Title,
		Description: services.OptionalDescription{
			Present: body.Description.Present,
			Value:   body.Description.Value,
		},
		StartDate: services.OptionalDate{Present: body.StartDate.Present, Value: body.StartDate.Value},
		EndDate:   services.OptionalDate{Present: body.EndDate.Present, Value: body.EndDate.Value},
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, updated)
}

// DeleteSchedule deletes a schedule and its grants
// DELETE /api/schedules/{id}
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, ok := h.authorized(w, r)
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteSchedule(r.Context(), schedule); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ShareSchedule grants or revokes edit access for another user
// PUT /api/schedules/{id}/editors/{userID}
func (h *ScheduleHandler) ShareSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, ok := h.authorized(w, r)
	if !ok {
		return
	}

	var req services.ShareScheduleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = r.PathValue("userID")

	caller, _ := httputil.GetIdentity(r)
	grant, err := h.scheduleService.ShareSchedule(r.Context(), schedule, caller, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, grant)
}

func (h *ScheduleHandler) authorized(w http.ResponseWriter, r *http.Request) (*models.Schedule, bool) {
	schedule, ok := httputil.ResourceFrom[*models.Schedule](r)
	if !ok {
		h.logger.Error("schedule route registered without access guard", "path", r.URL.Path)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
	return schedule, ok
}
