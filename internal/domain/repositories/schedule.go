package repositories

import (
	"context"

	"itinerary/internal/domain/models"
)

// ScheduleRepository defines data access operations for schedules
type ScheduleRepository interface {
	ResourceReader[*models.Schedule]

	// Create inserts a schedule and fills in ID and timestamps
	Create(ctx context.Context, schedule *models.Schedule) error

	// ListAccessible returns schedules the user created or holds an access grant on,
	// ordered by updated_at DESC
	ListAccessible(ctx context.Context, userID string) ([]models.Schedule, error)

	// Update persists title, description and dates
	Update(ctx context.Context, schedule *models.Schedule) error

	// Delete removes a schedule
	Delete(ctx context.Context, id int64) error
}
