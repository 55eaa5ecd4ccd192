package session

import (
	"github.com/golang-jwt/jwt/v4"
)

// decodeIdentity extracts the subject and email claims from a JWT without
// verifying its signature — the client has no key material, and identity
// here is display-only. Any failure falls back to the placeholder identity
// rather than failing the session.
func decodeIdentity(token string) Identity {
	identity := Identity{Username: PlaceholderUsername}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return identity
	}

	if sub, ok := claims["sub"].(string); ok && sub != "" {
		identity.Username = sub
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity
}
