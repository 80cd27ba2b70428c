package repositories

import (
	"context"

	"itinerary/internal/domain/models"
)

// ChecklistRepository defines data access operations for checklists
type ChecklistRepository interface {
	ResourceReader[*models.Checklist]

	Create(ctx context.Context, checklist *models.Checklist) error
	Update(ctx context.Context, checklist *models.Checklist) error
	Delete(ctx context.Context, id int64) error
}
