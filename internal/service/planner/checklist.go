package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"itinerary/internal/config"
	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
	"itinerary/internal/domain/services"
)

// checklistService implements the ChecklistService interface
type checklistService struct {
	checklistRepo repositories.ChecklistRepository
	logger        *slog.Logger
}

// NewChecklistService creates a new checklist service
func NewChecklistService(checklistRepo repositories.ChecklistRepository, logger *slog.Logger) services.ChecklistService {
	return &checklistService{
		checklistRepo: checklistRepo,
		logger:        logger,
	}
}

func (s *checklistService) CreateChecklist(ctx context.Context, req *services.CreateChecklistRequest) (*models.Checklist, error) {
	now := time.Now()
	checklist := &models.Checklist{
		CreatedBy: req.UserID,
		Title:     strings.TrimSpace(req.Title),
		Items:     normalizeItems(req.Items),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateChecklist(checklist); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.checklistRepo.Create(ctx, checklist); err != nil {
		return nil, err
	}

	s.logger.Info("checklist created",
		"id", checklist.ID,
		"user_id", req.UserID,
		"items", len(checklist.Items),
	)

	return checklist, nil
}

func (s *checklistService) UpdateChecklist(ctx context.Context, checklist *models.Checklist, req *services.UpdateChecklistRequest) (*models.Checklist, error) {
	updated := *checklist

	if req.Title != nil {
		updated.Title = strings.TrimSpace(*req.Title)
	}
	if req.Items != nil {
		updated.Items = normalizeItems(*req.Items)
	}

	if err := validateChecklist(&updated); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updated.UpdatedAt = time.Now()
	if err := s.checklistRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("checklist updated", "id", updated.ID)
	return &updated, nil
}

func (s *checklistService) DeleteChecklist(ctx context.Context, checklist *models.Checklist) error {
	if err := s.checklistRepo.Delete(ctx, checklist.ID); err != nil {
		return err
	}

	s.logger.Info("checklist deleted", "id", checklist.ID)
	return nil
}

func normalizeItems(items []models.ChecklistItem) []models.ChecklistItem {
	out := make([]models.ChecklistItem, 0, len(items))
	for _, item := range items {
		item.Text = strings.TrimSpace(item.Text)
		out = append(out, item)
	}
	return out
}

func validateChecklist(checklist *models.Checklist) error {
	return validation.ValidateStruct(checklist,
		validation.Field(&checklist.CreatedBy, validation.Required),
		validation.Field(&checklist.Title, validation.Required, validation.Length(1, config.MaxChecklistTitleLength)),
		validation.Field(&checklist.Items,
			validation.Length(0, config.MaxChecklistItems),
			validation.Each(validation.By(itemHasText)),
		),
	)
}

func itemHasText(value any) error {
	item, _ := value.(models.ChecklistItem)
	return validation.Validate(item.Text, validation.Required, validation.Length(1, 500))
}
