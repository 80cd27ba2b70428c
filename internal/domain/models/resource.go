package models

import "time"

// ResourceKind names a category of owned, shareable resource.
// The set is closed: each kind is bound to its own typed repository.
type ResourceKind string

const (
	KindSchedule  ResourceKind = "schedule"
	KindChecklist ResourceKind = "checklist"
)

// OwnedResource is what the access authorizer needs to know about a resource.
type OwnedResource interface {
	ResourceID() int64
	OwnerID() string
	Kind() ResourceKind
}

// AccessGrant delegates edit access on a resource to a non-owner.
// At most one grant exists per (ResourceID, UserID).
type AccessGrant struct {
	ResourceID int64     `json:"schedule_id" db:"schedule_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Access     bool      `json:"access" db:"access"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
