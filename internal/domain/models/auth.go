package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims represents the JWT claims issued by the identity provider.
type AuthClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Role                 string `json:"role"` // "authenticated" or "anon"
	SessionID            string `json:"session_id"`
	IsAnonymous          bool   `json:"is_anonymous"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *AuthClaims) GetUserID() string {
	return c.Subject
}

// Identity is the resolved caller of a request.
// The auth middleware builds it from verified claims; nothing downstream creates one.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// IdentityFromClaims converts verified claims into an Identity
func IdentityFromClaims(c *AuthClaims) Identity {
	return Identity{ID: c.GetUserID(), Email: c.Email}
}
