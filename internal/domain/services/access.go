package services

import (
	"context"

	"itinerary/internal/domain/models"
)

// ResourceAuthorizer decides whether a caller may act on one resource of kind R.
//
// Authorize parses rawID, loads the resource and returns it when the caller
// owns it or holds a grant with the access flag set. Every other outcome is an
// error; see service/access for the error type.
type ResourceAuthorizer[R models.OwnedResource] interface {
	Kind() models.ResourceKind
	Authorize(ctx context.Context, rawID string, caller models.Identity) (R, error)
}
