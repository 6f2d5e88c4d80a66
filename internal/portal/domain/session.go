package domain

import "time"

// Session is the server-side record backing a bearer token. Tokens are
// signed, but a token is only honored while its session row is alive; this
// is what makes logout effective immediately.
type Session struct {
	ID        string // ULID
	Owner     Owner
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// AliveAt reports whether the session can still authenticate requests.
func (s Session) AliveAt(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
