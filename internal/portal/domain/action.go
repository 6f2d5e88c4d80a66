package domain

import (
	"fmt"
	"time"
)

// InvitationAction is an admin-only transition on an invitation.
type InvitationAction string

const (
	ActionApprove InvitationAction = "approve"
	ActionReject  InvitationAction = "reject"
	ActionResend  InvitationAction = "resend"
	ActionCancel  InvitationAction = "cancel"
)

// ParseInvitationAction validates an action name from the wire.
func ParseInvitationAction(s string) (InvitationAction, error) {
	switch InvitationAction(s) {
	case ActionApprove, ActionReject, ActionResend, ActionCancel:
		return InvitationAction(s), nil
	default:
		return "", fmt.Errorf("domain: unknown invitation action %q", s)
	}
}

// Transition describes the effect of an action.
type Transition struct {
	Status    InvitationStatus
	ExpiresAt time.Time // zero when the action leaves expiry unchanged
}

// Apply returns the transition the action performs at the given time.
//
// approve/resend re-open the invitation (pending, fresh expiry window);
// reject/cancel force it expired. The approve/reject pair behaves exactly
// like resend/cancel: it is a leftover from a dropped submitted/review step
// and is kept so existing dashboard clients continue to work.
func (a InvitationAction) Apply(now time.Time, ttl time.Duration) (Transition, error) {
	switch a {
	case ActionApprove, ActionResend:
		return Transition{Status: InvitationPending, ExpiresAt: now.Add(ttl)}, nil
	case ActionReject, ActionCancel:
		return Transition{Status: InvitationExpired}, nil
	default:
		return Transition{}, fmt.Errorf("domain: unknown invitation action %q", a)
	}
}
