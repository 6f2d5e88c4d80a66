package service

import (
	"context"
	"testing"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestUserReview(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := &UserService{Store: st}

	admin := seedAdmin(t, st, "frontdesk", "adminpass123")
	pending := seedUser(t, st, "Priya Sharma", "+919876543210", "userpass123", domain.ApprovalPending)

	t.Run("requires manage capability", func(t *testing.T) {
		_, err := svc.Review(ctx, pending, pending.Owner.ID, domain.ApprovalApproved)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("decision must be a final status", func(t *testing.T) {
		_, err := svc.Review(ctx, admin, pending.Owner.ID, domain.ApprovalPending)
		require.ErrorIs(t, err, ErrInvalidReview)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Review(ctx, admin, 999999, domain.ApprovalApproved)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("approve", func(t *testing.T) {
		user, err := svc.Review(ctx, admin, pending.Owner.ID, domain.ApprovalApproved)
		require.NoError(t, err)
		require.Equal(t, domain.ApprovalApproved, user.ApprovalStatus)
	})

	t.Run("reject", func(t *testing.T) {
		user, err := svc.Review(ctx, admin, pending.Owner.ID, domain.ApprovalRejected)
		require.NoError(t, err)
		require.Equal(t, domain.ApprovalRejected, user.ApprovalStatus)
	})
}
