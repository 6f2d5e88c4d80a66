package sqlite

import (
	"context"
	"database/sql"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (full_name, phone, password_hash, approval_status,
			invitation_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.FullName, u.Phone, u.PasswordHash, string(u.ApprovalStatus),
		u.InvitationID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.getUser(ctx, `WHERE id = ?`, id)
}

func (r *usersRepo) GetUserByPhone(ctx context.Context, phone string) (domain.User, error) {
	return r.getUser(ctx, `WHERE phone = ?`, phone)
}

func (r *usersRepo) getUser(ctx context.Context, where string, arg any) (domain.User, error) {
	var (
		u      domain.User
		status string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, phone, password_hash, approval_status,
			invitation_id, created_at, updated_at
		FROM users `+where, arg,
	).Scan(&u.ID, &u.FullName, &u.Phone, &u.PasswordHash, &status,
		&u.InvitationID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if u.ApprovalStatus, err = domain.ParseApprovalStatus(status); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) PhoneInUse(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE phone = ?)`, phone).Scan(&exists)
	return exists, err
}

func (r *usersRepo) SetApprovalStatus(
	ctx context.Context,
	id int64,
	status domain.ApprovalStatus,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET approval_status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
