package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/cryptox"
	"github.com/kcdforg/parentsclub-sub003/pkg/idx"
	"github.com/kcdforg/parentsclub-sub003/pkg/jwtx"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"
)

var (
	ErrUnauthorized       = errors.New("missing or invalid session")
	ErrForbidden          = errors.New("insufficient privileges")
	ErrAccountNotApproved = errors.New("account is not approved")
	ErrBadCredentials     = errors.New("invalid login or password")
)

// SessionValidator resolves a bearer token to a principal. The invitation
// core depends on this capability, not on the concrete AuthService, so it
// can be tested against a fake session source.
type SessionValidator interface {
	Authorize(ctx context.Context, token string) (domain.Principal, error)
}

// AuthService issues and validates session tokens. Tokens are HS256 JWTs
// bound to a server-side session row; both the signature and the row must
// check out, so logout takes effect immediately.
type AuthService struct {
	Store      store.Store
	Tokens     *jwtx.HS256
	SessionTTL time.Duration
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// TokenTTL is the effective session lifetime, defaults applied.
func (s *AuthService) TokenTTL() time.Duration {
	return s.ttl()
}

// Login authenticates an account and mints a session token. Admins log in
// by username, users by phone number.
func (s *AuthService) Login(
	ctx context.Context,
	kind domain.OwnerKind,
	login, password string,
) (string, domain.Principal, error) {
	log := slogx.FromContext(ctx)

	var (
		owner        domain.Owner
		passwordHash string
	)
	switch kind {
	case domain.OwnerAdmin:
		admin, err := s.Store.Admins().GetAdminByUsername(ctx, login)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", domain.Principal{}, ErrBadCredentials
			}
			return "", domain.Principal{}, err
		}
		owner = domain.AdminOwner(admin.ID)
		passwordHash = admin.PasswordHash
	case domain.OwnerUser:
		user, err := s.Store.Users().GetUserByPhone(ctx, login)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", domain.Principal{}, ErrBadCredentials
			}
			return "", domain.Principal{}, err
		}
		owner = domain.UserOwner(user.ID)
		passwordHash = user.PasswordHash
	default:
		return "", domain.Principal{}, fmt.Errorf("%w: %q", domain.ErrUnknownOwnerKind, kind)
	}

	if err := cryptox.VerifyPassword(password, passwordHash); err != nil {
		log.Warn("login failed", slog.String("kind", string(kind)))
		return "", domain.Principal{}, ErrBadCredentials
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		Owner:     owner,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return "", domain.Principal{}, err
	}

	claims := jwtx.NewSessionClaims(
		strconv.FormatInt(owner.ID, 10),
		session.ID,
		string(owner.Kind),
		s.Tokens.Issuer(),
		s.ttl(),
		now,
	)
	token, err := s.Tokens.Sign(claims)
	if err != nil {
		return "", domain.Principal{}, err
	}

	// A pending user may hold a session; every invitation operation will
	// still refuse it until an admin approves the account.
	principal, err := s.principalFor(ctx, owner)
	if err != nil {
		if !errors.Is(err, ErrAccountNotApproved) {
			return "", domain.Principal{}, err
		}
		principal = domain.Principal{Owner: owner}
	}

	log.Info("session created",
		slog.String("session_id", session.ID),
		slog.String("owner", owner.String()),
	)
	return token, principal, nil
}

// Logout revokes the session behind the token. Tokens that fail
// verification are rejected rather than silently ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return ErrUnauthorized
	}
	if err := s.Store.Sessions().RevokeSession(ctx, claims.SID, time.Now().UTC()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthorized
		}
		return err
	}
	return nil
}

// Authorize resolves a bearer token to a principal with capability flags.
// Admins always get every capability; users must be approved and only get
// invitation-creation rights over their own invitations.
func (s *AuthService) Authorize(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return domain.Principal{}, ErrUnauthorized
	}

	session, err := s.Store.Sessions().GetSession(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Principal{}, ErrUnauthorized
		}
		return domain.Principal{}, err
	}
	if !session.AliveAt(time.Now().UTC()) {
		return domain.Principal{}, ErrUnauthorized
	}

	// The token's subject must agree with the session record it names.
	subject, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subject != session.Owner.ID || claims.Kind != string(session.Owner.Kind) {
		return domain.Principal{}, ErrUnauthorized
	}

	return s.principalFor(ctx, session.Owner)
}

// principalFor loads the account the owner points at and derives its
// capabilities. The switch is exhaustive over the owner union.
func (s *AuthService) principalFor(ctx context.Context, owner domain.Owner) (domain.Principal, error) {
	switch owner.Kind {
	case domain.OwnerAdmin:
		admin, err := s.Store.Admins().GetAdminByID(ctx, owner.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Principal{}, ErrUnauthorized
			}
			return domain.Principal{}, err
		}
		return domain.AdminPrincipal(admin.ID, admin.Username), nil

	case domain.OwnerUser:
		user, err := s.Store.Users().GetUserByID(ctx, owner.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Principal{}, ErrUnauthorized
			}
			return domain.Principal{}, err
		}
		if user.ApprovalStatus != domain.ApprovalApproved {
			return domain.Principal{}, ErrAccountNotApproved
		}
		return domain.UserPrincipal(user.ID, user.FullName), nil

	default:
		return domain.Principal{}, fmt.Errorf("%w: %q", domain.ErrUnknownOwnerKind, owner.Kind)
	}
}
