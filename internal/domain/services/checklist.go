package services

import (
	"context"

	"itinerary/internal/domain/models"
)

type CreateChecklistRequest struct {
	UserID string                 `json:"-"`
	Title  string                 `json:"title"`
	Items  []models.ChecklistItem `json:"items"`
}

// UpdateChecklistRequest replaces whichever fields are non-nil
type UpdateChecklistRequest struct {
	Title *string                 `json:"title"`
	Items *[]models.ChecklistItem `json:"items"`
}

// ChecklistService defines business logic operations for checklists
type ChecklistService interface {
	CreateChecklist(ctx context.Context, req *CreateChecklistRequest) (*models.Checklist, error)
	UpdateChecklist(ctx context.Context, checklist *models.Checklist, req *UpdateChecklistRequest) (*models.Checklist, error)
	DeleteChecklist(ctx context.Context, checklist *models.Checklist) error
}
