package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/stretchr/testify/require"
)

func TestAdminsRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	t.Run("empty until seeded", func(t *testing.T) {
		empty, err := st.Admins().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	id := seedAdmin(t, st, "frontdesk")

	t.Run("lookup by id and username", func(t *testing.T) {
		byID, err := st.Admins().GetAdminByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "frontdesk", byID.Username)

		byName, err := st.Admins().GetAdminByUsername(ctx, "frontdesk")
		require.NoError(t, err)
		require.Equal(t, id, byName.ID)

		_, err = st.Admins().GetAdminByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("username is unique", func(t *testing.T) {
		_, err := st.Admins().CreateAdmin(ctx, domain.Admin{
			Username:     "frontdesk",
			PasswordHash: "x",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("no longer empty", func(t *testing.T) {
		empty, err := st.Admins().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})
}

func TestUsersRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	id := seedUser(t, st, "Priya Sharma", "+919876543210", domain.ApprovalPending)

	t.Run("lookup by phone", func(t *testing.T) {
		u, err := st.Users().GetUserByPhone(ctx, "+919876543210")
		require.NoError(t, err)
		require.Equal(t, id, u.ID)
		require.Equal(t, domain.ApprovalPending, u.ApprovalStatus)

		_, err = st.Users().GetUserByPhone(ctx, "+10000000000")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("phone is unique", func(t *testing.T) {
		_, err := st.Users().CreateUser(ctx, domain.User{
			FullName:       "Other",
			Phone:          "+919876543210",
			PasswordHash:   "x",
			ApprovalStatus: domain.ApprovalPending,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("phone in use", func(t *testing.T) {
		inUse, err := st.Users().PhoneInUse(ctx, "+919876543210")
		require.NoError(t, err)
		require.True(t, inUse)

		inUse, err = st.Users().PhoneInUse(ctx, "+10000000000")
		require.NoError(t, err)
		require.False(t, inUse)
	})

	t.Run("approval status update", func(t *testing.T) {
		require.NoError(t, st.Users().SetApprovalStatus(ctx, id, domain.ApprovalApproved))

		u, err := st.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.ApprovalApproved, u.ApprovalStatus)

		require.ErrorIs(t,
			st.Users().SetApprovalStatus(ctx, 999999, domain.ApprovalApproved),
			store.ErrNotFound)
	})
}

func TestProfilesRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	userID := seedUser(t, st, "Priya Sharma", "+919876543210", domain.ApprovalApproved)

	profileID, err := st.Profiles().CreateProfile(ctx, domain.Profile{
		UserID:    userID,
		FullName:  "Priya Sharma",
		Phone:     "+919876543210",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Positive(t, profileID)

	t.Run("lookup by user id", func(t *testing.T) {
		p, err := st.Profiles().GetProfileByUserID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, profileID, p.ID)
		require.Equal(t, "+919876543210", p.Phone)

		_, err = st.Profiles().GetProfileByUserID(ctx, 999999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("phone is unique", func(t *testing.T) {
		otherUser := seedUser(t, st, "Copycat", "+911111111111", domain.ApprovalApproved)
		_, err := st.Profiles().CreateProfile(ctx, domain.Profile{
			UserID:   otherUser,
			FullName: "Copycat",
			Phone:    "+919876543210",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("phone in use", func(t *testing.T) {
		inUse, err := st.Profiles().PhoneInUse(ctx, "+919876543210")
		require.NoError(t, err)
		require.True(t, inUse)

		inUse, err = st.Profiles().PhoneInUse(ctx, "+10000000000")
		require.NoError(t, err)
		require.False(t, inUse)
	})
}
