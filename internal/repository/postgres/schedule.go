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

const scheduleColumns = `id, created_by, title, description, start_date, end_date, created_at, updated_at`

// PostgresScheduleRepository implements the ScheduleRepository interface
type PostgresScheduleRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(config *RepositoryConfig) repositories.ScheduleRepository {
	return &PostgresScheduleRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresScheduleRepository) Kind() models.ResourceKind {
	return models.KindSchedule
}

// GetByID retrieves a schedule by primary key only
func (r *PostgresScheduleRepository) GetByID(ctx context.Context, id int64) (*models.Schedule, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, scheduleColumns, r.tables.Schedules)

	executor := GetExecutor(ctx, r.pool)
	schedule, err := scanSchedule(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	return schedule, nil
}

// Create inserts a schedule and fills in ID and timestamps
func (r *PostgresScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (created_by, title, description, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, r.tables.Schedules)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		schedule.CreatedBy,
		schedule.Title,
		schedule.Description,
		schedule.StartDate,
		schedule.EndDate,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		if IsPgCheckViolation(err) {
			return fmt.Errorf("schedule dates: %w", domain.ErrValidation)
		}
		return fmt.Errorf("create schedule: %w", err)
	}

	return nil
}

// ListAccessible returns schedules the user created or holds an access grant on
func (r *PostgresScheduleRepository) ListAccessible(ctx context.Context, userID string) ([]models.Schedule, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.created_by, s.title, s.description, s.start_date, s.end_date, s.created_at, s.updated_at
		FROM %s s
		WHERE s.created_by = $1
		   OR EXISTS (
				SELECT 1 FROM %s g
				WHERE g.schedule_id = s.id AND g.user_id = $1 AND g.access
		   )
		ORDER BY s.updated_at DESC
	`, r.tables.Schedules, r.tables.ScheduleGrants)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	schedules := []models.Schedule{}
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, *schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}

	return schedules, nil
}

// Update persists title, description and dates
func (r *PostgresScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, start_date = $3, end_date = $4, updated_at = $5
		WHERE id = $6
	`, r.tables.Schedules)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		schedule.Title,
		schedule.Description,
		schedule.StartDate,
		schedule.EndDate,
		schedule.UpdatedAt,
		schedule.ID,
	)
	if err != nil {
		if IsPgCheckViolation(err) {
			return fmt.Errorf("schedule dates: %w", domain.ErrValidation)
		}
		return fmt.Errorf("update schedule: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %d: %w", schedule.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a schedule
func (r *PostgresScheduleRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Schedules)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanSchedule(row pgx.Row) (*models.Schedule, error) {
	var s models.Schedule
	err := row.Scan(
		&s.ID,
		&s.CreatedBy,
		&s.Title,
		&s.Description,
		&s.StartDate,
		&s.EndDate,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
