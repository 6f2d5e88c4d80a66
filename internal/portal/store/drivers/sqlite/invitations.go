package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, invitation_code, invited_name, invited_phone,
	invited_by_type, invited_by_id, status, created_at, expires_at, used_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) (int64, error) {
	if err := inv.InvitedBy.Validate(); err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (invitation_code, invited_name, invited_phone,
			invited_by_type, invited_by_id, status, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.Code,
		inv.InvitedName,
		inv.InvitedPhone,
		string(inv.InvitedBy.Kind),
		inv.InvitedBy.ID,
		string(inv.Status),
		inv.CreatedAt,
		inv.ExpiresAt,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id int64) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE invitation_code = ?`, code)
	return scanInvitation(row)
}

func (r *invitationsRepo) HasActiveInvitationForPhone(
	ctx context.Context,
	phone string,
	now time.Time,
) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM invitations
			WHERE invited_phone = ? AND status = 'pending' AND expires_at > ?
		)`, phone, now).Scan(&exists)
	return exists, err
}

func (r *invitationsRepo) ListInvitations(
	ctx context.Context,
	f store.InvitationFilter,
) ([]store.InvitationRow, error) {
	where, args, err := invitationFilterClauses(f)
	if err != nil {
		return nil, err
	}

	// Inviter display name resolves through whichever account table the
	// owner discriminator points at; a dangling owner yields an empty name
	// rather than dropping the row.
	query := `
		SELECT i.id, i.invitation_code, i.invited_name, i.invited_phone,
			i.invited_by_type, i.invited_by_id, i.status, i.created_at,
			i.expires_at, i.used_at,
			COALESCE(CASE i.invited_by_type
				WHEN 'admin' THEN a.username
				WHEN 'user' THEN u.full_name
			END, '') AS inviter_name
		FROM invitations i
		LEFT JOIN admins a ON i.invited_by_type = 'admin' AND a.id = i.invited_by_id
		LEFT JOIN users u ON i.invited_by_type = 'user' AND u.id = i.invited_by_id`
	query += where
	query += ` ORDER BY i.created_at DESC, i.id DESC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.InvitationRow
	for rows.Next() {
		var (
			inv     domain.Invitation
			kind    string
			status  string
			usedAt  sql.NullTime
			inviter string
		)
		if err := rows.Scan(
			&inv.ID, &inv.Code, &inv.InvitedName, &inv.InvitedPhone,
			&kind, &inv.InvitedBy.ID, &status, &inv.CreatedAt,
			&inv.ExpiresAt, &usedAt, &inviter,
		); err != nil {
			return nil, err
		}
		if inv.InvitedBy.Kind, err = domain.ParseOwnerKind(kind); err != nil {
			return nil, err
		}
		if inv.Status, err = domain.ParseInvitationStatus(status); err != nil {
			return nil, err
		}
		inv.UsedAt = mapNullTimePtr(usedAt)
		out = append(out, store.InvitationRow{Invitation: inv, InviterName: inviter})
	}
	return out, rows.Err()
}

func (r *invitationsRepo) CountInvitations(ctx context.Context, f store.InvitationFilter) (int, error) {
	where, args, err := invitationFilterClauses(f)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invitations i`+where, args...).Scan(&count)
	return count, err
}

func (r *invitationsRepo) ReopenInvitation(ctx context.Context, id int64, expiresAt time.Time) error {
	return r.updateOne(ctx, `
		UPDATE invitations SET status = 'pending', expires_at = ?, used_at = NULL
		WHERE id = ?`, expiresAt, id)
}

func (r *invitationsRepo) ExpireInvitation(ctx context.Context, id int64) error {
	return r.updateOne(ctx, `UPDATE invitations SET status = 'expired' WHERE id = ?`, id)
}

func (r *invitationsRepo) MarkInvitationUsed(ctx context.Context, id int64, usedAt time.Time) error {
	return r.updateOne(ctx, `
		UPDATE invitations SET status = 'used', used_at = ?
		WHERE id = ?`, usedAt, id)
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id int64) error {
	return r.updateOne(ctx, `DELETE FROM invitations WHERE id = ?`, id)
}

func (r *invitationsRepo) ExpireStaleInvitations(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = 'expired'
		WHERE status = 'pending' AND expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// updateOne runs a single-row mutation and maps a zero row count to
// store.ErrNotFound.
func (r *invitationsRepo) updateOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func invitationFilterClauses(f store.InvitationFilter) (string, []any, error) {
	var (
		clauses []string
		args    []any
	)

	if f.Owner != nil {
		if err := f.Owner.Validate(); err != nil {
			return "", nil, fmt.Errorf("invalid owner filter: %w", err)
		}
		clauses = append(clauses, "i.invited_by_type = ? AND i.invited_by_id = ?")
		args = append(args, string(f.Owner.Kind), f.Owner.ID)
	}
	if f.Status != "" {
		clauses = append(clauses, "i.status = ?")
		args = append(args, string(f.Status))
	}
	if f.Search != "" {
		clauses = append(clauses, "(i.invited_name LIKE ? OR i.invited_phone LIKE ?)")
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func scanInvitation(row *sql.Row) (domain.Invitation, error) {
	var (
		inv    domain.Invitation
		kind   string
		status string
		usedAt sql.NullTime
	)
	err := row.Scan(
		&inv.ID, &inv.Code, &inv.InvitedName, &inv.InvitedPhone,
		&kind, &inv.InvitedBy.ID, &status, &inv.CreatedAt,
		&inv.ExpiresAt, &usedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	if inv.InvitedBy.Kind, err = domain.ParseOwnerKind(kind); err != nil {
		return domain.Invitation{}, err
	}
	if inv.Status, err = domain.ParseInvitationStatus(status); err != nil {
		return domain.Invitation{}, err
	}
	inv.UsedAt = mapNullTimePtr(usedAt)
	return inv, nil
}
