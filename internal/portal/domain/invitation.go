package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultInvitationTTL is how long a freshly created (or re-opened)
// invitation stays redeemable.
const DefaultInvitationTTL = 72 * time.Hour

type InvitationStatus string

const (
	InvitationPending InvitationStatus = "pending"
	InvitationUsed    InvitationStatus = "used"
	InvitationExpired InvitationStatus = "expired"
)

// ParseInvitationStatus validates a wire/storage status value.
func ParseInvitationStatus(s string) (InvitationStatus, error) {
	switch InvitationStatus(s) {
	case InvitationPending, InvitationUsed, InvitationExpired:
		return InvitationStatus(s), nil
	default:
		return "", fmt.Errorf("domain: unknown invitation status %q", s)
	}
}

// Invitation is the sole entity the lifecycle manager owns. The code is the
// unguessable capability embedded in registration links; everything else is
// bookkeeping around it.
type Invitation struct {
	ID           int64
	Code         string
	InvitedName  string
	InvitedPhone string
	InvitedBy    Owner
	Status       InvitationStatus
	CreatedAt    time.Time
	ExpiresAt    time.Time
	UsedAt       *time.Time
}

// StaleAt reports whether the invitation is still marked pending but its
// expiry has passed. Such rows are lazily reclassified on the next read.
func (i Invitation) StaleAt(now time.Time) bool {
	return i.Status == InvitationPending && now.After(i.ExpiresAt)
}

// RedeemableAt reports whether the invitation can still be used to register.
func (i Invitation) RedeemableAt(now time.Time) bool {
	return i.Status == InvitationPending && !now.After(i.ExpiresAt)
}

// Invitee phone numbers must carry an explicit country code:
// +<1-4 digit country code><7-15 digit subscriber number>.
var phonePattern = regexp.MustCompile(`^\+\d{1,4}\d{7,15}$`)

// ValidPhone reports whether s is an acceptable invitee phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
