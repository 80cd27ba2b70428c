package httputil

import (
	"context"
	"net/http"

	"itinerary/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	identityKey  contextKey = "identity"
	resourceKey  contextKey = "resource"
	requestIDKey contextKey = "requestID"
)

// WithIdentity attaches the authenticated caller to the request
func WithIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, identity)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the caller, reporting whether one was attached
func GetIdentity(r *http.Request) (models.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(models.Identity)
	return identity, ok && identity.ID != ""
}

// GetUserID retrieves the caller's ID, returns empty string if not found
func GetUserID(r *http.Request) string {
	identity, _ := GetIdentity(r)
	return identity.ID
}

// WithResource attaches an authorized resource to the request
func WithResource(r *http.Request, resource models.OwnedResource) *http.Request {
	ctx := context.WithValue(r.Context(), resourceKey, resource)
	return r.WithContext(ctx)
}

// ResourceFrom retrieves the authorized resource of type R attached by the access guard
func ResourceFrom[R models.OwnedResource](r *http.Request) (R, bool) {
	resource, ok := r.Context().Value(resourceKey).(R)
	return resource, ok
}

// WithRequestID stores the request id in the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id, or "" outside a request
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
