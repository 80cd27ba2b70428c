package services

import (
	"context"

	"itinerary/internal/domain/models"
)

// UpsertPlaceRequest carries a catalog entry to insert or overwrite
type UpsertPlaceRequest struct {
	PlaceID   string   `json:"place_id" yaml:"place_id"`
	Name      string   `json:"name" yaml:"name"`
	Address   string   `json:"address" yaml:"address"`
	Latitude  *float64 `json:"latitude" yaml:"latitude"`
	Longitude *float64 `json:"longitude" yaml:"longitude"`
	Rating    *float64 `json:"rating" yaml:"rating"`
	Types     []string `json:"types" yaml:"types"`
}

// PlaceService defines business logic operations for the places catalog
type PlaceService interface {
	ListPlaces(ctx context.Context) ([]models.Place, error)
	GetPlace(ctx context.Context, placeID string) (*models.Place, error)
	UpsertPlace(ctx context.Context, req *UpsertPlaceRequest) (*models.Place, error)
}
