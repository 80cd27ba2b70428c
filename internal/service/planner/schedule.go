package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"itinerary/internal/config"
	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
	"itinerary/internal/domain/services"
)

// scheduleService implements the ScheduleService interface
type scheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	grantRepo    repositories.GrantRepository
	txManager    repositories.TransactionManager
	logger       *slog.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	grantRepo repositories.GrantRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		grantRepo:    grantRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateSchedule creates a schedule owned by req.UserID
func (s *scheduleService) CreateSchedule(ctx context.Context, req *services.CreateScheduleRequest) (*models.Schedule, error) {
	now := time.Now()
	schedule := &models.Schedule{
		CreatedBy:   req.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	s.logger.Info("schedule created",
		"id", schedule.ID,
		"title", schedule.Title,
		"user_id", req.UserID,
	)

	return schedule, nil
}

func (s *scheduleService) ListSchedules(ctx context.Context, userID string) ([]models.Schedule, error) {
	return s.scheduleRepo.ListAccessible(ctx, userID)
}

// UpdateSchedule applies a partial update to an authorized schedule
func (s *scheduleService) UpdateSchedule(ctx context.Context, schedule *models.Schedule, req *services.UpdateScheduleRequest) (*models.Schedule, error) {
	updated := *schedule

	if req.Title != nil {
		updated.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description.Present {
		updated.Description = req.Description.Value
	}
	if req.StartDate.Present {
		updated.StartDate = req.StartDate.Value
	}
	if req.EndDate.Present {
		updated.EndDate = req.EndDate.Value
	}

	if err := validateSchedule(&updated); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updated.UpdatedAt = time.Now()
	if err := s.scheduleRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("schedule updated",
		"id", updated.ID,
		"title", updated.Title,
	)

	return &updated, nil
}

// DeleteSchedule removes the schedule and its grants in one transaction
func (s *scheduleService) DeleteSchedule(ctx context.Context, schedule *models.Schedule) error {
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.grantRepo.DeleteByResource(ctx, schedule.ID); err != nil {
			return err
		}
		return s.scheduleRepo.Delete(ctx, schedule.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("schedule deleted", "id", schedule.ID)
	return nil
}

// ShareSchedule lets the owner grant or revoke edit access for another user.
// Editors pass the access guard but may not share further.
func (s *scheduleService) ShareSchedule(ctx context.Context, schedule *models.Schedule, caller models.Identity, req *services.ShareScheduleRequest) (*models.AccessGrant, error) {
	if schedule.OwnerID() != caller.ID {
		return nil, fmt.Errorf("only the owner can share schedule %d: %w", schedule.ID, domain.ErrForbidden)
	}

	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, &domain.ValidationError{Field: "user_id", Message: "must be a valid UUID"}
	}
	if req.UserID == schedule.OwnerID() {
		return nil, &domain.ValidationError{Field: "user_id", Message: "owner already has access"}
	}

	grant := &models.AccessGrant{
		ResourceID: schedule.ID,
		UserID:     req.UserID,
		Access:     req.Access,
	}
	if err := s.grantRepo.Upsert(ctx, grant); err != nil {
		return nil, err
	}

	s.logger.Info("schedule shared",
		"id", schedule.ID,
		"editor_id", grant.UserID,
		"access", grant.Access,
	)

	return grant, nil
}

func validateSchedule(schedule *models.Schedule) error {
	return validation.ValidateStruct(schedule,
		validation.Field(&schedule.CreatedBy, validation.Required),
		validation.Field(&schedule.Title, validation.Required, validation.Length(1, config.MaxScheduleTitleLength)),
		validation.Field(&schedule.Description, validation.Length(0, config.MaxScheduleDescriptionLength)),
		validation.Field(&schedule.EndDate, validation.By(endNotBefore(schedule.StartDate))),
	)
}

// endNotBefore rejects an end date earlier than start; either may be unset
func endNotBefore(start *time.Time) validation.RuleFunc {
	return func(value any) error {
		end, _ := value.(*time.Time)
		if start == nil || end == nil {
			return nil
		}
		if end.Before(*start) {
			return errors.New("must not be before start_date")
		}
		return nil
	}
}
