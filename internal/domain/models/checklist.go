package models

import "time"

// ChecklistItem is one entry of a checklist, stored as JSONB
type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type Checklist struct {
	ID        int64           `json:"id" db:"id"`
	CreatedBy string          `json:"create_by" db:"created_by"`
	Title     string          `json:"title" db:"title"`
	Items     []ChecklistItem `json:"items" db:"items"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

func (c *Checklist) ResourceID() int64  { return c.ID }
func (c *Checklist) OwnerID() string    { return c.CreatedBy }
func (c *Checklist) Kind() ResourceKind { return KindChecklist }
