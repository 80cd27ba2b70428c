package access

import (
	"context"
	"errors"
	"strconv"

	"itinerary/internal/domain"
	"itinerary/internal/domain/models"
	"itinerary/internal/domain/repositories"
)

// Authorizer implements services.ResourceAuthorizer for one resource kind.
//
// A caller is allowed when they created the resource, or when a grant for
// (resource id, caller id) exists with Access set. The grant lookup uses the
// same key for every kind and is skipped entirely for owners.
type Authorizer[R models.OwnedResource] struct {
	resources repositories.ResourceReader[R]
	grants    repositories.GrantReader
}

// NewAuthorizer binds an authorizer to the repository of its resource kind
func NewAuthorizer[R models.OwnedResource](
	resources repositories.ResourceReader[R],
	grants repositories.GrantReader,
) *Authorizer[R] {
	return &Authorizer[R]{
		resources: resources,
		grants:    grants,
	}
}

// Kind returns the resource kind this authorizer protects
func (a *Authorizer[R]) Kind() models.ResourceKind {
	return a.resources.Kind()
}

// Authorize returns the resource identified by rawID if caller may act on it.
// Failures are *Error values; the first failing step decides the reason.
func (a *Authorizer[R]) Authorize(ctx context.Context, rawID string, caller models.Identity) (R, error) {
	var zero R
	kind := a.resources.Kind()

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return zero, &Error{Reason: ReasonInvalidInput, Kind: kind, RawID: rawID, Err: err}
	}

	resource, err := a.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, &Error{Reason: ReasonNotFound, Kind: kind, RawID: rawID, Err: err}
		}
		return zero, &Error{Reason: ReasonRepositoryFailure, Kind: kind, RawID: rawID, Err: err}
	}

	if resource.OwnerID() == caller.ID {
		return resource, nil
	}

	grant, err := a.grants.GetGrant(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, &Error{Reason: ReasonForbidden, Kind: kind, RawID: rawID}
		}
		return zero, &Error{Reason: ReasonRepositoryFailure, Kind: kind, RawID: rawID, Err: err}
	}

	if !grant.Access {
		return zero, &Error{Reason: ReasonForbidden, Kind: kind, RawID: rawID}
	}

	return resource, nil
}

// ReasonOf extracts the Reason from an Authorize error, or 0 if err is not an *Error
func ReasonOf(err error) Reason {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr.Reason
	}
	return 0
}
