package http

import (
	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
)

func invitationWire(inv domain.Invitation, inviterName string) portalsdk.Invitation {
	return portalsdk.Invitation{
		ID:           inv.ID,
		Code:         inv.Code,
		InvitedName:  inv.InvitedName,
		InvitedPhone: inv.InvitedPhone,
		InvitedBy:    string(inv.InvitedBy.Kind),
		InvitedByID:  inv.InvitedBy.ID,
		InviterName:  inviterName,
		Status:       string(inv.Status),
		CreatedAt:    inv.CreatedAt,
		ExpiresAt:    inv.ExpiresAt,
		UsedAt:       inv.UsedAt,
	}
}

func invitationRowsWire(rows []store.InvitationRow) []portalsdk.Invitation {
	out := make([]portalsdk.Invitation, 0, len(rows))
	for _, row := range rows {
		out = append(out, invitationWire(row.Invitation, row.InviterName))
	}
	return out
}

func paginationWire(p service.Pagination) portalsdk.Pagination {
	return portalsdk.Pagination{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
		TotalCount: p.TotalCount,
		From:       p.From,
		To:         p.To,
	}
}

func principalWire(p domain.Principal) *portalsdk.Principal {
	return &portalsdk.Principal{
		Kind:         string(p.Owner.Kind),
		ID:           p.Owner.ID,
		DisplayName:  p.DisplayName,
		CanCreate:    p.CanCreate,
		CanViewAll:   p.CanViewAll,
		CanManageAll: p.CanManageAll,
	}
}

func userWire(u domain.User) portalsdk.User {
	return portalsdk.User{
		ID:             u.ID,
		FullName:       u.FullName,
		Phone:          u.Phone,
		ApprovalStatus: string(u.ApprovalStatus),
		InvitationID:   u.InvitationID,
		CreatedAt:      u.CreatedAt,
	}
}
