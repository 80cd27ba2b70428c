package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
)

// PostgresChecklistRepository implements the ChecklistRepository interface.
// Items are stored as a JSONB array.
type PostgresChecklistRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(config *RepositoryConfig) repositories.ChecklistRepository {
	return &PostgresChecklistRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresChecklistRepository) Kind() models.ResourceKind {
	return models.KindChecklist
}

// GetByID retrieves a checklist by primary key only
func (r *PostgresChecklistRepository) GetByID(ctx context.Context, id int64) (*models.Checklist, error) {
	query := fmt.Sprintf(`
		SELECT id, created_by, title, items, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Checklists)

	var c models.Checklist
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.CreatedBy,
		&c.Title,
		&c.Items,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("checklist %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get checklist: %w", err)
	}

	return &c, nil
}

func (r *PostgresChecklistRepository) Create(ctx context.Context, checklist *models.Checklist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (created_by, title, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Checklists)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		checklist.CreatedBy,
		checklist.Title,
		checklist.Items,
		checklist.CreatedAt,
		checklist.UpdatedAt,
	).Scan(&checklist.ID, &checklist.CreatedAt, &checklist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create checklist: %w", err)
	}

	return nil
}

func (r *PostgresChecklistRepository) Update(ctx context.Context, checklist *models.Checklist) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, items = $2, updated_at = $3
		WHERE id = $4
	`, r.tables.Checklists)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		checklist.Title,
		checklist.Items,
		checklist.UpdatedAt,
		checklist.ID,
	)
	if err != nil {
		return fmt.Errorf("update checklist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("checklist %d: %w", checklist.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresChecklistRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Checklists)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete checklist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("checklist %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
