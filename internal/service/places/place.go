package places

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"itinerary/internal/config"
	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
	"itinerary/internal/domain/services"
)

// placeService implements the PlaceService interface
type placeService struct {
	placeRepo repositories.PlaceRepository
	logger    *slog.Logger
}

// NewPlaceService creates a new place service
func NewPlaceService(placeRepo repositories.PlaceRepository, logger *slog.Logger) services.PlaceService {
	return &placeService{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (s *placeService) ListPlaces(ctx context.Context) ([]models.Place, error) {
	return s.placeRepo.List(ctx)
}

func (s *placeService) GetPlace(ctx context.Context, placeID string) (*models.Place, error) {
	return s.placeRepo.GetByPlaceID(ctx, strings.TrimSpace(placeID))
}

// UpsertPlace validates and stores a catalog entry keyed by place_id
func (s *placeService) UpsertPlace(ctx context.Context, req *services.UpsertPlaceRequest) (*models.Place, error) {
	req.PlaceID = strings.TrimSpace(req.PlaceID)
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)

	if err := validateUpsertRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	place := &models.Place{
		PlaceID:   req.PlaceID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Rating:    req.Rating,
		Types:     req.Types,
	}

	if err := s.placeRepo.Upsert(ctx, place); err != nil {
		return nil, err
	}

	s.logger.Info("place saved",
		"place_id", place.PlaceID,
		"name", place.Name,
	)

	return place, nil
}

func validateUpsertRequest(req *services.UpsertPlaceRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.PlaceID, validation.Required, validation.Length(1, config.MaxPlaceIDLength)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxPlaceNameLength)),
		validation.Field(&req.Address, validation.Required, validation.Length(1, config.MaxAddressLength)),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&req.Types, validation.Each(validation.Required, validation.Length(1, 64))),
	)
}
