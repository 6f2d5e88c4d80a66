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

// BootstrapService seeds the first admin account on an empty database so a
// fresh deployment is immediately operable. It never touches a database
// that already has an admin.
type BootstrapService struct {
	Store    store.Store
	Username string
	Password string
}

// EnsureSeedAdmin creates the seed admin if and only if none exists yet.
func (s *BootstrapService) EnsureSeedAdmin(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	if s.Username == "" || s.Password == "" {
		log.Debug("no seed admin configured, skipping bootstrap")
		return nil
	}

	empty, err := s.Store.Admins().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	hash, err := cryptox.HashPassword(s.Password)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	id, err := s.Store.Admins().CreateAdmin(ctx, domain.Admin{
		Username:     s.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Another instance may have seeded between the check and the insert.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	log.Info("seed admin created",
		slog.Int64("admin_id", id),
		slog.String("username", s.Username),
	)
	return nil
}
