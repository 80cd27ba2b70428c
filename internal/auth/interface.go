package auth

import "itinerary/internal/domain/models"

// TokenVerifier validates bearer tokens for the auth middleware.
type TokenVerifier interface {
	// VerifyToken returns the claims of a valid token, or domain.ErrUnauthorized.
	VerifyToken(tokenString string) (*models.AuthClaims, error)

	// Close releases resources held by the verifier
	Close() error
}
