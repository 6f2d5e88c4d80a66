package portalsdk

import "time"

// ErrorResponse is the standard error body every endpoint returns on
// failure: a single human-readable message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// Auth
// ============================================================================

// LoginRequest authenticates an account. Kind selects the account table:
// "admin" logs in by username, "user" by phone number.
type LoginRequest struct {
	Kind     string `json:"kind"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"` // always "Bearer"
	ExpiresAt time.Time  `json:"expires_at"`
	Principal *Principal `json:"principal,omitempty"`
}

// Principal describes the authenticated account and its capabilities. The
// flags are advisory for UI gating; the server re-checks on every call.
type Principal struct {
	Kind        string `json:"kind"`
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name,omitempty"`

	CanCreate    bool `json:"can_create"`
	CanViewAll   bool `json:"can_view_all"`
	CanManageAll bool `json:"can_manage_all"`
}

// ============================================================================
// Invitations
// ============================================================================

// Invitation is the wire form of an invitation record.
type Invitation struct {
	ID           int64      `json:"id"`
	Code         string     `json:"code"`
	InvitedName  string     `json:"invited_name"`
	InvitedPhone string     `json:"invited_phone"`
	InvitedBy    string     `json:"invited_by"` // "admin" or "user"
	InvitedByID  int64      `json:"invited_by_id"`
	InviterName  string     `json:"inviter_name,omitempty"`
	Status       string     `json:"status"` // pending, used or expired
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
}

// InvitationMutationRequest is the body of POST /v1/invitations. When
// Action is empty a new invitation is created from InvitedName and
// InvitedPhone; otherwise the action is applied to InvitationID.
type InvitationMutationRequest struct {
	Action       string `json:"action,omitempty"` // approve, reject, resend or cancel
	InvitationID int64  `json:"invitation_id,omitempty"`

	InvitedName  string `json:"invited_name,omitempty"`
	InvitedPhone string `json:"invited_phone,omitempty"`
}

// CreateInvitationResponse is a freshly created invitation plus the
// shareable registration link embedding its code.
type CreateInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
	Link       string     `json:"link"`
}

// ActionResponse is the invitation after a lifecycle action was applied.
type ActionResponse struct {
	Invitation Invitation `json:"invitation"`
}

// Pagination locates a page inside the full result set. From/To are
// 1-based display positions, both 0 for an empty page.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
	From       int `json:"from"`
	To         int `json:"to"`
}

// ListInvitationsResponse is one page of the invitation listing.
type ListInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
	Pagination  Pagination   `json:"pagination"`

	// Principal echoes the caller's capability flags for UI gating; the
	// server re-checks them on every operation regardless.
	Principal *Principal `json:"principal"`
}

// ValidateCodeResponse answers the public "is this code redeemable?"
// question. Invitation is present only when Valid.
type ValidateCodeResponse struct {
	Valid      bool        `json:"valid"`
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Invitation *Invitation `json:"invitation,omitempty"`
}

// ============================================================================
// Registration and review
// ============================================================================

// RegisterRequest redeems an invitation code into a user account. Name and
// phone come from the invitation, the invitee only picks a password.
type RegisterRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// User is the wire form of a registered user account.
type User struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	ApprovalStatus string    `json:"approval_status"` // pending, approved or rejected
	InvitationID   int64     `json:"invitation_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReviewUserRequest records an admin decision over a pending user.
type ReviewUserRequest struct {
	UserID   int64  `json:"user_id"`
	Decision string `json:"decision"` // approved or rejected
}

// ============================================================================
// Health
// ============================================================================

// HealthChecks itemizes dependency status on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
