package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
)

const placeColumns = `place_id, name, address, latitude, longitude, rating, types, created_at, updated_at`

// PostgresPlaceRepository implements the PlaceRepository interface
type PostgresPlaceRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(config *RepositoryConfig) repositories.PlaceRepository {
	return &PostgresPlaceRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List returns all places ordered by name
func (r *PostgresPlaceRepository) List(ctx context.Context) ([]models.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY name`, placeColumns, r.tables.Places)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		places = append(places, *place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}

	return places, nil
}

// GetByPlaceID retrieves a place by its external identifier
func (r *PostgresPlaceRepository) GetByPlaceID(ctx context.Context, placeID string) (*models.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE place_id = $1`, placeColumns, r.tables.Places)

	executor := GetExecutor(ctx, r.pool)
	place, err := scanPlace(executor.QueryRow(ctx, query, placeID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("place %s: %w", placeID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get place: %w", err)
	}

	return place, nil
}

// Upsert inserts the place or overwrites the row with the same place_id.
// created_at is preserved on update.
func (r *PostgresPlaceRepository) Upsert(ctx context.Context, place *models.Place) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (place_id, name, address, latitude, longitude, rating, types, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (place_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			rating = EXCLUDED.rating,
			types = EXCLUDED.types,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`, r.tables.Places)

	types := place.Types
	if types == nil {
		types = []string{}
	}

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		place.PlaceID,
		place.Name,
		place.Address,
		place.Latitude,
		place.Longitude,
		place.Rating,
		types,
	).Scan(&place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert place: %w", err)
	}

	place.Types = types
	return nil
}

func scanPlace(row pgx.Row) (*models.Place, error) {
	var p models.Place
	err := row.Scan(
		&p.PlaceID,
		&p.Name,
		&p.Address,
		&p.Latitude,
		&p.Longitude,
		&p.Rating,
		&p.Types,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
