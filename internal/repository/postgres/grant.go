package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
)

// PostgresGrantRepository implements the GrantRepository interface on the
// users_schedules table, keyed by (schedule_id, user_id). Every resource kind
// is checked against this table with the same key.
type PostgresGrantRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewGrantRepository creates a new grant repository
func NewGrantRepository(config *RepositoryConfig) repositories.GrantRepository {
	return &PostgresGrantRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetGrant retrieves the grant for (resourceID, userID)
func (r *PostgresGrantRepository) GetGrant(ctx context.Context, resourceID int64, userID string) (*models.AccessGrant, error) {
	query := fmt.Sprintf(`
		SELECT schedule_id, user_id, access, created_at, updated_at
		FROM %s
		WHERE schedule_id = $1 AND user_id = $2
	`, r.tables.ScheduleGrants)

	var g models.AccessGrant
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, resourceID, userID).Scan(
		&g.ResourceID,
		&g.UserID,
		&g.Access,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("grant (%d, %s): %w", resourceID, userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get grant: %w", err)
	}

	return &g, nil
}

// Upsert creates or updates the grant for (ResourceID, UserID)
func (r *PostgresGrantRepository) Upsert(ctx context.Context, grant *models.AccessGrant) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (schedule_id, user_id, access, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (schedule_id, user_id)
		DO UPDATE SET access = EXCLUDED.access, updated_at = NOW()
		RETURNING created_at, updated_at
	`, r.tables.ScheduleGrants)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, grant.ResourceID, grant.UserID, grant.Access).
		Scan(&grant.CreatedAt, &grant.UpdatedAt)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("schedule %d: %w", grant.ResourceID, domain.ErrNotFound)
		}
		return fmt.Errorf("upsert grant: %w", err)
	}

	return nil
}

// DeleteByResource removes every grant on a resource id
func (r *PostgresGrantRepository) DeleteByResource(ctx context.Context, resourceID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE schedule_id = $1`, r.tables.ScheduleGrants)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, resourceID); err != nil {
		return fmt.Errorf("delete grants: %w", err)
	}

	return nil
}
