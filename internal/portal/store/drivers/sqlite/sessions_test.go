package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedSession(t *testing.T, st store.Store, owner domain.Owner, now time.Time, ttl time.Duration) domain.Session {
	t.Helper()

	s := domain.Session{
		ID:        idx.New().String(),
		Owner:     owner,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	require.NoError(t, st.Sessions().CreateSession(context.Background(), s))
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	adminID := seedAdmin(t, st, "admin")
	created := seedSession(t, st, domain.AdminOwner(adminID), now, time.Hour)

	got, err := st.Sessions().GetSession(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, domain.AdminOwner(adminID), got.Owner)
	require.Nil(t, got.RevokedAt)
	require.True(t, got.AliveAt(now))

	_, err = st.Sessions().GetSession(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRevokeSession(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	adminID := seedAdmin(t, st, "admin")
	s := seedSession(t, st, domain.AdminOwner(adminID), now, time.Hour)

	require.NoError(t, st.Sessions().RevokeSession(ctx, s.ID, now))

	got, err := st.Sessions().GetSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RevokedAt)
	require.False(t, got.AliveAt(now), "a revoked session no longer authenticates")

	require.ErrorIs(t, st.Sessions().RevokeSession(ctx, idx.New().String(), now), store.ErrNotFound)
}

func TestDeleteDeadSessions(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	adminID := seedAdmin(t, st, "admin")
	owner := domain.AdminOwner(adminID)

	alive := seedSession(t, st, owner, now, time.Hour)
	expired := seedSession(t, st, owner, now.Add(-2*time.Hour), time.Hour)
	revoked := seedSession(t, st, owner, now, time.Hour)
	require.NoError(t, st.Sessions().RevokeSession(ctx, revoked.ID, now))

	n, err := st.Sessions().DeleteDeadSessions(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	_, err = st.Sessions().GetSession(ctx, expired.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Sessions().GetSession(ctx, revoked.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.Sessions().GetSession(ctx, alive.ID)
	require.NoError(t, err)
	require.True(t, got.AliveAt(now))
}
