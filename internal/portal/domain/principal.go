package domain

// Principal is the resolved identity and capability set behind a session
// token. The flags are returned to clients for UI gating, but the services
// re-check them on every operation; the flags in a response are not a
// security boundary.
type Principal struct {
	Owner       Owner
	DisplayName string

	CanCreate    bool
	CanViewAll   bool
	CanManageAll bool
}

// AdminPrincipal has every capability.
func AdminPrincipal(id int64, displayName string) Principal {
	return Principal{
		Owner:        AdminOwner(id),
		DisplayName:  displayName,
		CanCreate:    true,
		CanViewAll:   true,
		CanManageAll: true,
	}
}

// UserPrincipal is an approved user: may create invitations, sees only
// their own.
func UserPrincipal(id int64, displayName string) Principal {
	return Principal{
		Owner:       UserOwner(id),
		DisplayName: displayName,
		CanCreate:   true,
	}
}

// Owns reports whether the principal created the invitation.
func (p Principal) Owns(inv Invitation) bool {
	return p.Owner.Equal(inv.InvitedBy)
}
