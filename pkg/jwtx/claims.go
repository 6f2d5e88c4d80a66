// Package jwtx holds the signed session-token claims shared between the
// login endpoint that mints tokens and the authorization path that consumes
// them. Tokens are symmetric (HS256); the portal has no federation partner
// that would need public-key verification.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime of a portal session token.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims. Subject carries the account id,
// Kind disambiguates the two account tables it may refer to.
type Claims struct {
	jwt.RegisteredClaims

	// SID is the server-side session record the token is bound to. A token
	// is only as alive as its session row; revoking the row kills the token.
	SID string `json:"sid,omitempty"`

	// Kind is the account type of the subject: "admin" or "user".
	Kind string `json:"kind,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a session token.
func NewSessionClaims(subject, sid, kind, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        sid,
		},
		SID:  sid,
		Kind: kind,
	}
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
