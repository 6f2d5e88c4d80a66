package store

import (
	"context"
	"errors"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists surfaces unique-constraint violations. The invitation
	// code generation loop relies on this to turn its check-then-insert race
	// into a retryable conflict instead of a silent duplicate.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose per-entity sub-repositories to keep concerns tidy and testable.
type Store interface {
	Invitations() Invitations
	Admins() Admins
	Users() Users
	Profiles() Profiles
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back when fn errors,
	// committed otherwise. This is the recommended way to run multi-step
	// mutations such as invitation redemption.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store: the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// InvitationFilter scopes and pages a listing. A nil Owner means the caller
// may see every invitation; services set it for non-privileged principals.
type InvitationFilter struct {
	Owner  *domain.Owner
	Status domain.InvitationStatus // empty = any status
	Search string                  // substring match over invited name/phone
	Limit  int
	Offset int
}

// InvitationRow is an invitation joined with its inviter's display name.
type InvitationRow struct {
	domain.Invitation

	InviterName string
}

type Invitations interface {
	// CreateInvitation inserts a new invitation and returns the assigned id.
	// A duplicate code yields ErrAlreadyExists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) (int64, error)

	// GetInvitationByID returns an invitation by its id.
	GetInvitationByID(ctx context.Context, id int64) (domain.Invitation, error)

	// GetInvitationByCode is the public validation lookup.
	GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error)

	// HasActiveInvitationForPhone reports whether a pending, unexpired
	// invitation already targets the phone.
	HasActiveInvitationForPhone(ctx context.Context, phone string, now time.Time) (bool, error)

	// ListInvitations returns a page of invitations joined with inviter
	// display names, newest first.
	ListInvitations(ctx context.Context, f InvitationFilter) ([]InvitationRow, error)

	// CountInvitations returns the total row count for the same filter,
	// ignoring Limit/Offset.
	CountInvitations(ctx context.Context, f InvitationFilter) (int, error)

	// ReopenInvitation sets status=pending with a fresh expiry.
	ReopenInvitation(ctx context.Context, id int64, expiresAt time.Time) error

	// ExpireInvitation sets status=expired, leaving expires_at untouched.
	ExpireInvitation(ctx context.Context, id int64) error

	// MarkInvitationUsed sets status=used and records the redemption time.
	MarkInvitationUsed(ctx context.Context, id int64, usedAt time.Time) error

	// DeleteInvitation hard-deletes the row.
	DeleteInvitation(ctx context.Context, id int64) error

	// ExpireStaleInvitations is the bulk sweep: every pending row whose
	// expiry has passed becomes expired. Idempotent.
	ExpireStaleInvitations(ctx context.Context, now time.Time) (int64, error)
}

type Admins interface {
	// CreateAdmin inserts an admin account and returns the assigned id.
	CreateAdmin(ctx context.Context, a domain.Admin) (int64, error)

	GetAdminByID(ctx context.Context, id int64) (domain.Admin, error)

	// GetAdminByUsername is used during login.
	GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error)

	// IsEmpty reports whether any admin exists (first-run seeding check).
	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	// CreateUser inserts a registered user and returns the assigned id.
	// A duplicate phone yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByPhone is used during login.
	GetUserByPhone(ctx context.Context, phone string) (domain.User, error)

	// PhoneInUse reports whether a registered account already has the phone.
	PhoneInUse(ctx context.Context, phone string) (bool, error)

	// SetApprovalStatus moves a user through admin review.
	SetApprovalStatus(ctx context.Context, id int64, status domain.ApprovalStatus) error
}

type Profiles interface {
	// CreateProfile inserts a member profile and returns the assigned id.
	CreateProfile(ctx context.Context, p domain.Profile) (int64, error)

	GetProfileByUserID(ctx context.Context, userID int64) (domain.Profile, error)

	// PhoneInUse reports whether an existing profile carries the phone.
	PhoneInUse(ctx context.Context, phone string) (bool, error)
}

type Sessions interface {
	// CreateSession stores a new session record (id is provided by the app).
	CreateSession(ctx context.Context, s domain.Session) error

	GetSession(ctx context.Context, id string) (domain.Session, error)

	// RevokeSession stamps revoked_at; revoked sessions fail authorization.
	RevokeSession(ctx context.Context, id string, at time.Time) error

	// DeleteDeadSessions removes expired and revoked sessions (housekeeping).
	DeleteDeadSessions(ctx context.Context, now time.Time) (int64, error)
}
