package services

import (
	"context"
	"time"

	"itinerary/internal/domain/models"
)

// CreateScheduleRequest represents a request to create a schedule
type CreateScheduleRequest struct {
	UserID      string     `json:"-"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// OptionalDescription tracks tri-state semantics for description updates (RFC 7396 PATCH).
// Transport-agnostic; the handler maps it from httputil.OptionalString.
//   - Present=false: leave unchanged
//   - Present=true, Value=nil: clear
//   - Present=true, Value!=nil: set
type OptionalDescription struct {
	Present bool
	Value   *string
}

// OptionalDate is the date counterpart of OptionalDescription; a present nil clears the date
type OptionalDate struct {
	Present bool
	Value   *time.Time
}

// UpdateScheduleRequest is a partial update. A nil Title and absent optionals
// are left unchanged.
type UpdateScheduleRequest struct {
	Title       *string
	Description OptionalDescription
	StartDate   OptionalDate
	EndDate     OptionalDate
}

// ShareScheduleRequest grants or revokes edit access for another user
type ShareScheduleRequest struct {
	UserID string `json:"-"`
	Access bool   `json:"access"`
}

// ScheduleService defines business logic operations for schedules.
// Mutating methods receive a schedule the access guard has already authorized.
type ScheduleService interface {
	CreateSchedule(ctx context.Context, req *CreateScheduleRequest) (*models.Schedule, error)

	// ListSchedules returns schedules the user owns or may edit
	ListSchedules(ctx context.Context, userID string) ([]models.Schedule, error)

	UpdateSchedule(ctx context.Context, schedule *models.Schedule, req *UpdateScheduleRequest) (*models.Schedule, error)

	// DeleteSchedule removes the schedule together with its grants
	DeleteSchedule(ctx context.Context, schedule *models.Schedule) error

	// ShareSchedule upserts a grant; only the owner may share
	ShareSchedule(ctx context.Context, schedule *models.Schedule, caller models.Identity, req *ShareScheduleRequest) (*models.AccessGrant, error)
}
