package portal_test

import (
	"testing"

	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginAndLogout(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := portalsdk.NewClient(baseURL)

	t.Run("seeded admin logs in", func(t *testing.T) {
		resp, err := client.LoginAdmin(ctx, adminUsername, adminPassword)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "Bearer", resp.TokenType)
		require.NotNil(t, resp.Principal)
		require.Equal(t, "admin", resp.Principal.Kind)
		require.True(t, resp.Principal.CanCreate)
		require.True(t, resp.Principal.CanViewAll)
		require.True(t, resp.Principal.CanManageAll)
	})

	t.Run("the session works until logout", func(t *testing.T) {
		_, err := client.ListInvitations(ctx, portalsdk.ListInvitationsParams{})
		require.NoError(t, err)

		require.NoError(t, client.Logout(ctx))

		_, err = client.ListInvitations(ctx, portalsdk.ListInvitationsParams{})
		require.True(t, portalsdk.IsUnauthorized(err), "revoked token should be rejected, got: %v", err)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		fresh := portalsdk.NewClient(baseURL)
		_, err := fresh.LoginAdmin(ctx, adminUsername, "wrong-password")
		require.True(t, portalsdk.IsUnauthorized(err), "expected 401, got: %v", err)
	})

	t.Run("unknown admin is rejected", func(t *testing.T) {
		fresh := portalsdk.NewClient(baseURL)
		_, err := fresh.LoginAdmin(ctx, "nobody", adminPassword)
		require.True(t, portalsdk.IsUnauthorized(err), "expected 401, got: %v", err)
	})
}

func TestMemberLogin(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := t.Context()
	admin := adminClient(t, baseURL)

	user := inviteAndRegister(t, baseURL, admin, "Priya Sharma", "+919876543210", "MemberPass123")

	t.Run("pending member has no capabilities", func(t *testing.T) {
		member := portalsdk.NewClient(baseURL)
		resp, err := member.LoginUser(ctx, "+919876543210", "MemberPass123")
		require.NoError(t, err, "pending members may hold a session")
		require.False(t, resp.Principal.CanCreate)

		_, err = member.ListInvitations(ctx, portalsdk.ListInvitationsParams{})
		require.True(t, portalsdk.IsForbidden(err), "expected 403, got: %v", err)
	})

	t.Run("approval unlocks the member", func(t *testing.T) {
		approveUser(t, admin, user.ID)

		member := portalsdk.NewClient(baseURL)
		resp, err := member.LoginUser(ctx, "+919876543210", "MemberPass123")
		require.NoError(t, err)
		require.Equal(t, "user", resp.Principal.Kind)
		require.Equal(t, "Priya Sharma", resp.Principal.DisplayName)
		require.True(t, resp.Principal.CanCreate)
		require.False(t, resp.Principal.CanManageAll)

		_, err = member.ListInvitations(ctx, portalsdk.ListInvitationsParams{})
		require.NoError(t, err)
	})
}
