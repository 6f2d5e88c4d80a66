package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestInvitationCreate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now, _ := fixedClock(t0)

	svc := &InvitationService{
		Store:   st,
		BaseURL: "https://portal.example.org/",
		Now:     now,
	}
	admin := seedAdmin(t, st, "frontdesk", "hunter2hunter2")

	t.Run("requires create capability", func(t *testing.T) {
		nobody := domain.Principal{Owner: domain.UserOwner(42)}
		_, err := svc.Create(ctx, nobody, CreateRequest{InvitedName: "A", InvitedPhone: "+61412345678"})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("validates invitee fields", func(t *testing.T) {
		tests := []struct {
			name    string
			req     CreateRequest
			wantErr error
		}{
			{"missing name", CreateRequest{InvitedPhone: "+61412345678"}, ErrNameRequired},
			{"blank name", CreateRequest{InvitedName: "   ", InvitedPhone: "+61412345678"}, ErrNameRequired},
			{"missing phone", CreateRequest{InvitedName: "Alex"}, ErrPhoneRequired},
			{"no country code", CreateRequest{InvitedName: "Alex", InvitedPhone: "0412345678"}, ErrInvalidPhone},
			{"letters in phone", CreateRequest{InvitedName: "Alex", InvitedPhone: "+61abc45678"}, ErrInvalidPhone},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Create(ctx, admin, tc.req)
				require.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("mints a pending invitation with a link", func(t *testing.T) {
		res, err := svc.Create(ctx, admin, CreateRequest{
			InvitedName:  "  Alex Doe  ",
			InvitedPhone: "+61412345678",
		})
		require.NoError(t, err)
		require.Positive(t, res.Invitation.ID)
		require.Equal(t, "Alex Doe", res.Invitation.InvitedName, "fields are trimmed")
		require.Equal(t, domain.InvitationPending, res.Invitation.Status)
		require.Equal(t, admin.Owner, res.Invitation.InvitedBy)
		require.True(t, cryptox.ValidInvitationCode(res.Invitation.Code))
		require.Equal(t, t0.Add(domain.DefaultInvitationTTL), res.Invitation.ExpiresAt)
		require.Equal(t, "https://portal.example.org/register?invitation="+res.Invitation.Code, res.Link)
	})

	t.Run("each phone conflict has its own error", func(t *testing.T) {
		// Registered account.
		seedUser(t, st, "Existing", "+61400000001", "hunter2hunter2", domain.ApprovalApproved)
		_, err := svc.Create(ctx, admin, CreateRequest{InvitedName: "X", InvitedPhone: "+61400000001"})
		require.ErrorIs(t, err, ErrPhoneRegistered)

		// Member profile on a different phone than the account.
		owner := seedUser(t, st, "Holder", "+61400000002", "hunter2hunter2", domain.ApprovalApproved)
		_, err = st.Profiles().CreateProfile(ctx, domain.Profile{
			UserID:   owner.Owner.ID,
			FullName: "Holder",
			Phone:    "+61400000003",
		})
		require.NoError(t, err)
		_, err = svc.Create(ctx, admin, CreateRequest{InvitedName: "X", InvitedPhone: "+61400000003"})
		require.ErrorIs(t, err, ErrPhoneHasProfile)

		// Active invitation from the earlier subtest.
		_, err = svc.Create(ctx, admin, CreateRequest{InvitedName: "X", InvitedPhone: "+61412345678"})
		require.ErrorIs(t, err, ErrInvitePending)
	})

	t.Run("expired invitation does not block a new one", func(t *testing.T) {
		res, err := svc.Create(ctx, admin, CreateRequest{InvitedName: "Y", InvitedPhone: "+61400000009"})
		require.NoError(t, err)
		require.NoError(t, st.Invitations().ExpireInvitation(ctx, res.Invitation.ID))

		_, err = svc.Create(ctx, admin, CreateRequest{InvitedName: "Y", InvitedPhone: "+61400000009"})
		require.NoError(t, err)
	})
}

func TestInvitationList(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now, advance := fixedClock(t0)

	svc := &InvitationService{Store: st, BaseURL: "https://portal.example.org", Now: now}
	admin := seedAdmin(t, st, "frontdesk", "hunter2hunter2")
	user := seedUser(t, st, "Priya Sharma", "+919876500000", "hunter2hunter2", domain.ApprovalApproved)

	for i := range 12 {
		_, err := svc.Create(ctx, admin, CreateRequest{
			InvitedName:  fmt.Sprintf("Admin Invitee %02d", i),
			InvitedPhone: fmt.Sprintf("+614000001%02d", i),
		})
		require.NoError(t, err)
	}
	for i := range 3 {
		_, err := svc.Create(ctx, user, CreateRequest{
			InvitedName:  fmt.Sprintf("User Invitee %d", i),
			InvitedPhone: fmt.Sprintf("+9198765001%02d", i),
		})
		require.NoError(t, err)
	}

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := svc.List(ctx, admin, ListRequest{Status: "archived"})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("admin sees everything with pagination metadata", func(t *testing.T) {
		res, err := svc.List(ctx, admin, ListRequest{Page: 1})
		require.NoError(t, err)
		require.Len(t, res.Invitations, PageSize)
		require.Equal(t, Pagination{
			Page: 1, PerPage: PageSize, TotalPages: 2, TotalCount: 15, From: 1, To: 10,
		}, res.Pagination)

		res, err = svc.List(ctx, admin, ListRequest{Page: 2})
		require.NoError(t, err)
		require.Len(t, res.Invitations, 5)
		require.Equal(t, 11, res.Pagination.From)
		require.Equal(t, 15, res.Pagination.To)
	})

	t.Run("page below one reads as page one", func(t *testing.T) {
		res, err := svc.List(ctx, admin, ListRequest{Page: -3})
		require.NoError(t, err)
		require.Equal(t, 1, res.Pagination.Page)
		require.Equal(t, 1, res.Pagination.From)
	})

	t.Run("page past the end is empty with zero from/to", func(t *testing.T) {
		res, err := svc.List(ctx, admin, ListRequest{Page: 9})
		require.NoError(t, err)
		require.Empty(t, res.Invitations)
		require.NotNil(t, res.Invitations)
		require.Zero(t, res.Pagination.From)
		require.Zero(t, res.Pagination.To)
		require.Equal(t, 15, res.Pagination.TotalCount)
	})

	t.Run("users see only their own invitations", func(t *testing.T) {
		res, err := svc.List(ctx, user, ListRequest{Page: 1})
		require.NoError(t, err)
		require.Len(t, res.Invitations, 3)
		require.Equal(t, 3, res.Pagination.TotalCount)
		for _, row := range res.Invitations {
			require.Equal(t, user.Owner, row.InvitedBy)
			require.Equal(t, "Priya Sharma", row.InviterName)
		}
	})

	t.Run("search narrows by invitee", func(t *testing.T) {
		res, err := svc.List(ctx, admin, ListRequest{Page: 1, Search: "User Invitee"})
		require.NoError(t, err)
		require.Equal(t, 3, res.Pagination.TotalCount)
	})

	t.Run("listing sweeps stale rows to expired", func(t *testing.T) {
		advance(t0.Add(domain.DefaultInvitationTTL + time.Hour))

		res, err := svc.List(ctx, admin, ListRequest{Page: 1, Status: string(domain.InvitationExpired)})
		require.NoError(t, err)
		require.Equal(t, 15, res.Pagination.TotalCount, "every pending row is past its window now")
		for _, row := range res.Invitations {
			require.Equal(t, domain.InvitationExpired, row.Status)
		}
	})
}

func TestInvitationHandleAction(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now, advance := fixedClock(t0)

	svc := &InvitationService{Store: st, BaseURL: "https://portal.example.org", Now: now}
	admin := seedAdmin(t, st, "frontdesk", "hunter2hunter2")
	user := seedUser(t, st, "Priya Sharma", "+919876500000", "hunter2hunter2", domain.ApprovalApproved)

	created, err := svc.Create(ctx, admin, CreateRequest{InvitedName: "Alex", InvitedPhone: "+61412345678"})
	require.NoError(t, err)
	id := created.Invitation.ID

	t.Run("requires manage capability", func(t *testing.T) {
		_, err := svc.HandleAction(ctx, user, id, domain.ActionResend)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown invitation", func(t *testing.T) {
		_, err := svc.HandleAction(ctx, admin, 999999, domain.ActionResend)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := svc.HandleAction(ctx, admin, id, domain.InvitationAction("revoke"))
		require.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("reject expires", func(t *testing.T) {
		inv, err := svc.HandleAction(ctx, admin, id, domain.ActionReject)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, inv.Status)

		stored, err := st.Invitations().GetInvitationByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, stored.Status)
	})

	t.Run("resend revives an expired invitation", func(t *testing.T) {
		later := t0.Add(48 * time.Hour)
		advance(later)

		inv, err := svc.HandleAction(ctx, admin, id, domain.ActionResend)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Equal(t, later.Add(domain.DefaultInvitationTTL), inv.ExpiresAt)
		require.Nil(t, inv.UsedAt)
	})

	t.Run("approve and resend are the same transition", func(t *testing.T) {
		fromApprove, err := svc.HandleAction(ctx, admin, id, domain.ActionApprove)
		require.NoError(t, err)
		fromResend, err := svc.HandleAction(ctx, admin, id, domain.ActionResend)
		require.NoError(t, err)
		require.Equal(t, fromApprove.Status, fromResend.Status)
		require.Equal(t, fromApprove.ExpiresAt, fromResend.ExpiresAt)
	})

	t.Run("cancel expires like reject", func(t *testing.T) {
		inv, err := svc.HandleAction(ctx, admin, id, domain.ActionCancel)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, inv.Status)
	})
}

func TestInvitationDelete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	svc := &InvitationService{Store: st, BaseURL: "https://portal.example.org"}
	admin := seedAdmin(t, st, "frontdesk", "hunter2hunter2")
	owner := seedUser(t, st, "Priya Sharma", "+919876500000", "hunter2hunter2", domain.ApprovalApproved)
	other := seedUser(t, st, "Dev Patel", "+919876500001", "hunter2hunter2", domain.ApprovalApproved)

	created, err := svc.Create(ctx, owner, CreateRequest{InvitedName: "Alex", InvitedPhone: "+61412345678"})
	require.NoError(t, err)
	id := created.Invitation.ID

	t.Run("unknown invitation", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, admin, 999999), ErrNotFound)
	})

	t.Run("another user may not delete it", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, other, id), ErrForbidden)
	})

	t.Run("the owner may", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, owner, id))
		require.ErrorIs(t, svc.Delete(ctx, owner, id), ErrNotFound)
	})

	t.Run("an admin may delete anyone's", func(t *testing.T) {
		created, err := svc.Create(ctx, owner, CreateRequest{InvitedName: "Alex", InvitedPhone: "+61412345678"})
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, admin, created.Invitation.ID))
	})
}

func TestInvitationValidateCode(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now, advance := fixedClock(t0)

	svc := &InvitationService{Store: st, BaseURL: "https://portal.example.org", Now: now}
	admin := seedAdmin(t, st, "frontdesk", "hunter2hunter2")

	created, err := svc.Create(ctx, admin, CreateRequest{InvitedName: "Alex", InvitedPhone: "+61412345678"})
	require.NoError(t, err)
	code := created.Invitation.Code

	t.Run("malformed codes read as not found", func(t *testing.T) {
		for _, bad := range []string{"", "short", "not-a-code", code[:63] + "Z"} {
			_, err := svc.ValidateCode(ctx, bad)
			require.ErrorIs(t, err, ErrNotFound, "code %q", bad)
		}
	})

	t.Run("well-formed but unknown code", func(t *testing.T) {
		unknown, err := cryptox.GenerateInvitationCode()
		require.NoError(t, err)
		_, err = svc.ValidateCode(ctx, unknown)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("pending code is valid and names the inviter", func(t *testing.T) {
		out, err := svc.ValidateCode(ctx, code)
		require.NoError(t, err)
		require.True(t, out.Valid)
		require.Equal(t, domain.InvitationPending, out.Status)
		require.Empty(t, out.Message)
		require.NotNil(t, out.Invitation)
		require.Equal(t, "Alex", out.Invitation.InvitedName)
		require.Equal(t, "frontdesk", out.Invitation.InviterName)
	})

	t.Run("used code answers with a login hint", func(t *testing.T) {
		require.NoError(t, st.Invitations().MarkInvitationUsed(ctx, created.Invitation.ID, now()))

		out, err := svc.ValidateCode(ctx, code)
		require.NoError(t, err)
		require.False(t, out.Valid)
		require.Equal(t, domain.InvitationUsed, out.Status)
		require.Contains(t, out.Message, "already been used")
		require.Nil(t, out.Invitation)
	})

	t.Run("stale pending code is expired on the spot", func(t *testing.T) {
		fresh, err := svc.Create(ctx, admin, CreateRequest{InvitedName: "Sam", InvitedPhone: "+61412345679"})
		require.NoError(t, err)
		advance(t0.Add(domain.DefaultInvitationTTL + time.Minute))

		out, err := svc.ValidateCode(ctx, fresh.Invitation.Code)
		require.NoError(t, err)
		require.False(t, out.Valid)
		require.Equal(t, domain.InvitationExpired, out.Status)
		require.Contains(t, out.Message, "expired")

		stored, err := st.Invitations().GetInvitationByID(ctx, fresh.Invitation.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, stored.Status, "the flip is persisted")
	})
}
