package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/cryptox"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"
)

var (
	ErrInvitationUsed    = errors.New("invitation has already been used")
	ErrInvitationExpired = errors.New("invitation has expired")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// RegistrationService redeems invitation codes into user accounts. The new
// account starts in approval_status=pending; an admin reviews it before it
// can do anything.
type RegistrationService struct {
	Store store.Store

	// Now is an injectable clock for tests. Nil means time.Now().UTC.
	Now func() time.Time
}

func (s *RegistrationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// RegisterRequest carries the code from the registration link plus the
// password the invitee chose. Name and phone come from the invitation
// itself, not from the form.
type RegisterRequest struct {
	Code     string
	Password string
}

// Register redeems the code: it creates the user and their profile and
// marks the invitation used, all in one transaction so a crash can never
// burn a code without creating the account.
func (s *RegistrationService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if len(req.Password) < minPasswordLength {
		return domain.User{}, ErrPasswordTooShort
	}
	if !cryptox.ValidInvitationCode(req.Code) {
		return domain.User{}, ErrNotFound
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.now()
	var (
		user     domain.User
		staleErr error
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.Invitations().GetInvitationByCode(ctx, req.Code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		switch {
		case inv.Status == domain.InvitationUsed:
			return ErrInvitationUsed
		case inv.Status == domain.InvitationExpired:
			return ErrInvitationExpired
		case inv.StaleAt(now):
			// Returning the error here would roll the flip back with the
			// rest of the transaction, so commit it and report after.
			staleErr = ErrInvitationExpired
			return tx.Invitations().ExpireInvitation(ctx, inv.ID)
		}

		user = domain.User{
			FullName:       inv.InvitedName,
			Phone:          inv.InvitedPhone,
			PasswordHash:   hash,
			ApprovalStatus: domain.ApprovalPending,
			InvitationID:   inv.ID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		userID, err := tx.Users().CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrPhoneRegistered
			}
			return err
		}
		user.ID = userID

		profile := domain.Profile{
			UserID:    userID,
			FullName:  inv.InvitedName,
			Phone:     inv.InvitedPhone,
			CreatedAt: now,
		}
		if _, err := tx.Profiles().CreateProfile(ctx, profile); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrPhoneHasProfile
			}
			return err
		}

		return tx.Invitations().MarkInvitationUsed(ctx, inv.ID, now)
	})
	if err != nil {
		return domain.User{}, err
	}
	if staleErr != nil {
		return domain.User{}, staleErr
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.Int64("invitation_id", user.InvitationID),
	)
	return user, nil
}
