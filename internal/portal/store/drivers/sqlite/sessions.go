package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	if err := s.Owner.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, owner_type, owner_id, created_at, expires_at, revoked_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, string(s.Owner.Kind), s.Owner.ID, s.CreatedAt, s.ExpiresAt,
		mapOptionalTime(s.RevokedAt),
	)
	return mapConflict(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var (
		s         domain.Session
		kind      string
		revokedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_type, owner_id, created_at, expires_at, revoked_at
		FROM sessions WHERE id = ?`, id,
	).Scan(&s.ID, &kind, &s.Owner.ID, &s.CreatedAt, &s.ExpiresAt, &revokedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	if s.Owner.Kind, err = domain.ParseOwnerKind(kind); err != nil {
		return domain.Session{}, err
	}
	s.RevokedAt = mapNullTimePtr(revokedAt)
	return s, nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET revoked_at = ?
		WHERE id = ? AND revoked_at IS NULL`, at, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *sessionsRepo) DeleteDeadSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM sessions WHERE expires_at < ? OR revoked_at IS NOT NULL`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
