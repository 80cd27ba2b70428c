package models

import "time"

type Schedule struct {
	ID          int64      `json:"id" db:"id"`
	CreatedBy   string     `json:"create_by" db:"created_by"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	StartDate   *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

func (s *Schedule) ResourceID() int64  { return s.ID }
func (s *Schedule) OwnerID() string    { return s.CreatedBy }
func (s *Schedule) Kind() ResourceKind { return KindSchedule }
