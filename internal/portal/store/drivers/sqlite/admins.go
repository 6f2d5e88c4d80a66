package sqlite

import (
	"context"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
)

type adminsRepo struct {
	db dbtx
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO admins (username, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		a.Username, a.PasswordHash, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *adminsRepo) GetAdminByID(ctx context.Context, id int64) (domain.Admin, error) {
	var a domain.Admin
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admins WHERE id = ?`, id,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	var a domain.Admin
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admins WHERE username = ?`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM admins)`).Scan(&exists)
	return !exists, err
}
