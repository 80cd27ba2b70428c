package repositories

import (
	"context"

	"itinerary/internal/domain/models"
)

// PlaceRepository defines data access operations for the places catalog
type PlaceRepository interface {
	// List returns all places ordered by name
	List(ctx context.Context) ([]models.Place, error)

	// GetByPlaceID retrieves a place by its external identifier
	GetByPlaceID(ctx context.Context, placeID string) (*models.Place, error)

	// Upsert inserts the place or overwrites the existing row with the same place_id
	Upsert(ctx context.Context, place *models.Place) error
}
