package sqlite

import (
	"context"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, full_name, phone, created_at)
		VALUES (?, ?, ?, ?)`,
		p.UserID, p.FullName, p.Phone, p.CreatedAt,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *profilesRepo) GetProfileByUserID(ctx context.Context, userID int64) (domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, full_name, phone, created_at
		FROM profiles WHERE user_id = ?`, userID,
	).Scan(&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.CreatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) PhoneInUse(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM profiles WHERE phone = ?)`, phone).Scan(&exists)
	return exists, err
}
