package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/services"
	"itinerary/internal/httputil"
)

// PlaceHandler handles places catalog HTTP requests
type PlaceHandler struct {
	placeService services.PlaceService
	logger       *slog.Logger
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService services.PlaceService, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
		logger:       logger,
	}
}

// ListPlaces returns the whole catalog
// GET /api/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.placeService.ListPlaces(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, places)
}

// GetPlace retrieves a place by its place_id
// GET /api/places/{placeID}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.placeService.GetPlace(r.Context(), r.PathValue("placeID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httputil.RespondMessage(w, http.StatusNotFound, "place not found")
			return
		}
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, place)
}

type upsertPlaceResponse struct {
	Message string        `json:"message"`
	Place   *models.Place `json:"place"`
}

// UpsertPlace creates or overwrites a place keyed by place_id
// POST /api/places
func (h *PlaceHandler) UpsertPlace(w http.ResponseWriter, r *http.Request) {
	var req services.UpsertPlaceRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	place, err := h.placeService.UpsertPlace(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, upsertPlaceResponse{Message: "place saved", Place: place})
}
