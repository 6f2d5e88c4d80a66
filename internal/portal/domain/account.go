package domain

import (
	"fmt"
	"time"
)

// ApprovalStatus tracks a registered user through admin review. Only
// approved users may create invitations of their own.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ParseApprovalStatus validates a wire/storage approval value.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), nil
	default:
		return "", fmt.Errorf("domain: unknown approval status %q", s)
	}
}

// Admin is a dashboard operator account.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// User is an account created through invitation redemption. InvitationID
// records which invitation admitted it.
type User struct {
	ID             int64
	FullName       string
	Phone          string
	PasswordHash   string
	ApprovalStatus ApprovalStatus
	InvitationID   int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Profile is the member profile attached to a user. Its phone is one of the
// three sources a new invitation's phone is checked against.
type Profile struct {
	ID        int64
	UserID    int64
	FullName  string
	Phone     string
	CreatedAt time.Time
}
