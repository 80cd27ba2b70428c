package repositories

import (
	"context"

	"itinerary/internal/domain/models"
)

// ResourceReader looks up one kind of owned resource by primary key.
// GetByID returns an error wrapping domain.ErrNotFound when no row matches.
type ResourceReader[R models.OwnedResource] interface {
	Kind() models.ResourceKind
	GetByID(ctx context.Context, id int64) (R, error)
}

// GrantReader looks up a sharing grant by (resource id, user id).
// The key does not include the resource kind.
type GrantReader interface {
	// GetGrant returns an error wrapping domain.ErrNotFound when no grant exists
	GetGrant(ctx context.Context, resourceID int64, userID string) (*models.AccessGrant, error)
}

// GrantRepository manages sharing grants
type GrantRepository interface {
	GrantReader

	// Upsert creates or updates the grant for (ResourceID, UserID)
	Upsert(ctx context.Context, grant *models.AccessGrant) error

	// DeleteByResource removes every grant on a resource id
	DeleteByResource(ctx context.Context, resourceID int64) error
}
