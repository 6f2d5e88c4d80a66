package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/cryptox"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"
)

var (
	ErrNotFound = errors.New("resource not found")

	ErrNameRequired  = errors.New("invited name is required")
	ErrPhoneRequired = errors.New("invited phone is required")
	ErrInvalidPhone  = errors.New("phone number must include a country code, e.g. +919876543210")
	ErrInvalidStatus = errors.New("unknown status filter")
	ErrInvalidAction = errors.New("unknown invitation action")

	ErrPhoneRegistered = errors.New("an account with this phone number already exists")
	ErrPhoneHasProfile = errors.New("a member profile with this phone number already exists")
	ErrInvitePending   = errors.New("an active invitation for this phone number already exists")

	ErrCodeExhausted = errors.New("could not generate a unique invitation code")
)

// PageSize is the fixed invitation listing page size.
const PageSize = 10

// maxCodeAttempts bounds the generate-and-insert retry loop. With 256 bits
// of randomness per code a second attempt is already extraordinary.
const maxCodeAttempts = 5

// InvitationService owns the invitation lifecycle: minting, listing, admin
// actions, deletion and public code validation.
type InvitationService struct {
	Store store.Store

	// BaseURL is the externally visible portal origin used to build
	// registration links, e.g. "https://portal.example.org".
	BaseURL string

	// TTL is the validity window of fresh and re-opened invitations.
	// Zero means domain.DefaultInvitationTTL.
	TTL time.Duration

	// Now is an injectable clock for tests. Nil means time.Now().UTC.
	Now func() time.Time
}

func (s *InvitationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return domain.DefaultInvitationTTL
}

// CreateRequest carries the invitee details for a new invitation.
type CreateRequest struct {
	InvitedName  string
	InvitedPhone string
}

// CreateResult is the freshly minted invitation plus its shareable link.
type CreateResult struct {
	Invitation domain.Invitation
	Link       string
}

// Create mints a new invitation on behalf of the principal. The phone must
// be free of registered accounts, member profiles and active invitations;
// each collision surfaces as its own validation error.
func (s *InvitationService) Create(
	ctx context.Context,
	p domain.Principal,
	req CreateRequest,
) (CreateResult, error) {
	log := slogx.FromContext(ctx)

	if !p.CanCreate {
		return CreateResult{}, ErrForbidden
	}

	name := strings.TrimSpace(req.InvitedName)
	phone := strings.TrimSpace(req.InvitedPhone)
	switch {
	case name == "":
		return CreateResult{}, ErrNameRequired
	case phone == "":
		return CreateResult{}, ErrPhoneRequired
	case !domain.ValidPhone(phone):
		return CreateResult{}, ErrInvalidPhone
	}

	now := s.now()
	if used, err := s.Store.Users().PhoneInUse(ctx, phone); err != nil {
		return CreateResult{}, err
	} else if used {
		return CreateResult{}, ErrPhoneRegistered
	}
	if used, err := s.Store.Profiles().PhoneInUse(ctx, phone); err != nil {
		return CreateResult{}, err
	} else if used {
		return CreateResult{}, ErrPhoneHasProfile
	}
	if active, err := s.Store.Invitations().HasActiveInvitationForPhone(ctx, phone, now); err != nil {
		return CreateResult{}, err
	} else if active {
		return CreateResult{}, ErrInvitePending
	}

	inv := domain.Invitation{
		InvitedName:  name,
		InvitedPhone: phone,
		InvitedBy:    p.Owner,
		Status:       domain.InvitationPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl()),
	}

	// The unique index on the code column is the real duplicate guard; a
	// collision comes back as ErrAlreadyExists and we simply mint again.
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := cryptox.GenerateInvitationCode()
		if err != nil {
			return CreateResult{}, fmt.Errorf("generating invitation code: %w", err)
		}
		inv.Code = code

		id, err := s.Store.Invitations().CreateInvitation(ctx, inv)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				log.Warn("invitation code collision, retrying",
					slog.Int("attempt", attempt),
				)
				continue
			}
			return CreateResult{}, err
		}
		inv.ID = id

		log.Info("invitation created",
			slog.Int64("invitation_id", id),
			slog.String("invited_by", p.Owner.String()),
		)
		return CreateResult{Invitation: inv, Link: s.registrationLink(code)}, nil
	}
	return CreateResult{}, ErrCodeExhausted
}

func (s *InvitationService) registrationLink(code string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/register?invitation=" + code
}

// ListRequest is a page request over the invitation listing.
type ListRequest struct {
	Page   int    // 1-based; values below 1 are treated as 1
	Status string // optional: pending, used or expired
	Search string // optional substring match on invitee name/phone
}

// Pagination describes the slice of the result set a page covers. From/To
// are 1-based display positions; both are 0 for an empty page.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
	From       int `json:"from"`
	To         int `json:"to"`
}

// ListResult is one page of invitations with pagination metadata.
type ListResult struct {
	Invitations []store.InvitationRow
	Pagination  Pagination
}

// List returns a page of invitations visible to the principal. Admins see
// everything; users see only invitations they created. Stale pending rows
// are swept to expired first so the listing never shows a pending
// invitation that is past its expiry.
func (s *InvitationService) List(
	ctx context.Context,
	p domain.Principal,
	req ListRequest,
) (ListResult, error) {
	log := slogx.FromContext(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}

	var status domain.InvitationStatus
	if req.Status != "" {
		parsed, err := domain.ParseInvitationStatus(req.Status)
		if err != nil {
			return ListResult{}, ErrInvalidStatus
		}
		status = parsed
	}

	// Best effort: a failed sweep only means a stale row may still read as
	// pending, and the next read gets another chance to fix it.
	if n, err := s.Store.Invitations().ExpireStaleInvitations(ctx, s.now()); err != nil {
		log.Warn("stale invitation sweep failed", slog.Any("error", err))
	} else if n > 0 {
		log.Info("expired stale invitations", slog.Int64("count", n))
	}

	filter := store.InvitationFilter{
		Status: status,
		Search: strings.TrimSpace(req.Search),
		Limit:  PageSize,
		Offset: (page - 1) * PageSize,
	}
	if !p.CanViewAll {
		owner := p.Owner
		filter.Owner = &owner
	}

	total, err := s.Store.Invitations().CountInvitations(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}
	rows, err := s.Store.Invitations().ListInvitations(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}

	totalPages := (total + PageSize - 1) / PageSize
	meta := Pagination{
		Page:       page,
		PerPage:    PageSize,
		TotalPages: totalPages,
		TotalCount: total,
	}
	if len(rows) > 0 {
		meta.From = filter.Offset + 1
		meta.To = filter.Offset + len(rows)
	}
	if rows == nil {
		rows = []store.InvitationRow{}
	}
	return ListResult{Invitations: rows, Pagination: meta}, nil
}

// HandleAction applies an admin lifecycle action to an invitation.
// Approve and resend re-open it with a fresh expiry; reject and cancel
// expire it. The transitions apply regardless of the current status, so
// resending an expired invitation revives it.
func (s *InvitationService) HandleAction(
	ctx context.Context,
	p domain.Principal,
	id int64,
	action domain.InvitationAction,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if !p.CanManageAll {
		return domain.Invitation{}, ErrForbidden
	}

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrNotFound
		}
		return domain.Invitation{}, err
	}

	tr, err := action.Apply(s.now(), s.ttl())
	if err != nil {
		return domain.Invitation{}, ErrInvalidAction
	}

	switch tr.Status {
	case domain.InvitationPending:
		if err := s.Store.Invitations().ReopenInvitation(ctx, id, tr.ExpiresAt); err != nil {
			return domain.Invitation{}, err
		}
		inv.Status = domain.InvitationPending
		inv.ExpiresAt = tr.ExpiresAt
		inv.UsedAt = nil
	case domain.InvitationExpired:
		if err := s.Store.Invitations().ExpireInvitation(ctx, id); err != nil {
			return domain.Invitation{}, err
		}
		inv.Status = domain.InvitationExpired
	default:
		return domain.Invitation{}, fmt.Errorf("unexpected transition status %q", tr.Status)
	}

	log.Info("invitation action applied",
		slog.Int64("invitation_id", id),
		slog.String("action", string(action)),
		slog.String("status", string(inv.Status)),
	)
	return inv, nil
}

// Delete hard-deletes an invitation. Admins may delete any invitation,
// users only their own.
func (s *InvitationService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !p.CanManageAll && !p.Owns(inv) {
		return ErrForbidden
	}
	if err := s.Store.Invitations().DeleteInvitation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("invitation deleted",
		slog.Int64("invitation_id", id),
		slog.String("deleted_by", p.Owner.String()),
	)
	return nil
}

// ValidationOutcome is the public answer to "is this code redeemable?".
// Unusable codes answer with Valid=false and a human-readable reason
// rather than an error so the registration page can render them.
type ValidationOutcome struct {
	Valid   bool
	Status  domain.InvitationStatus
	Message string

	// Invitation is populated only when Valid.
	Invitation *store.InvitationRow
}

// ValidateCode checks a registration code without authentication. A pending
// invitation whose expiry has passed is flipped to expired on the spot, so
// validation is also where individual stale rows get reclassified.
func (s *InvitationService) ValidateCode(ctx context.Context, code string) (ValidationOutcome, error) {
	log := slogx.FromContext(ctx)

	// Anything that is not a well-formed code cannot exist; skip the lookup.
	if !cryptox.ValidInvitationCode(code) {
		return ValidationOutcome{}, ErrNotFound
	}

	inv, err := s.Store.Invitations().GetInvitationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ValidationOutcome{}, ErrNotFound
		}
		return ValidationOutcome{}, err
	}

	now := s.now()
	if inv.StaleAt(now) {
		if err := s.Store.Invitations().ExpireInvitation(ctx, inv.ID); err != nil {
			// The caller still gets the expired answer; the row catches up
			// on the next sweep.
			log.Warn("failed to persist lazy expiry",
				slog.Int64("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		inv.Status = domain.InvitationExpired
	}

	switch inv.Status {
	case domain.InvitationUsed:
		return ValidationOutcome{
			Status:  inv.Status,
			Message: "This invitation has already been used. Please log in instead.",
		}, nil
	case domain.InvitationExpired:
		return ValidationOutcome{
			Status:  inv.Status,
			Message: "This invitation has expired. Please ask for a new one.",
		}, nil
	}

	inviter, err := s.inviterDisplayName(ctx, inv.InvitedBy)
	if err != nil {
		return ValidationOutcome{}, err
	}
	return ValidationOutcome{
		Valid:  true,
		Status: inv.Status,
		Invitation: &store.InvitationRow{
			Invitation:  inv,
			InviterName: inviter,
		},
	}, nil
}

// inviterDisplayName resolves the owner union to a display name. A dangling
// owner (account deleted after inviting) resolves to an empty name rather
// than an error.
func (s *InvitationService) inviterDisplayName(ctx context.Context, o domain.Owner) (string, error) {
	switch o.Kind {
	case domain.OwnerAdmin:
		admin, err := s.Store.Admins().GetAdminByID(ctx, o.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", nil
			}
			return "", err
		}
		return admin.Username, nil
	case domain.OwnerUser:
		user, err := s.Store.Users().GetUserByID(ctx, o.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", nil
			}
			return "", err
		}
		return user.FullName, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownOwnerKind, o.Kind)
	}
}
