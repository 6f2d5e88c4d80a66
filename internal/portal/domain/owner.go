package domain

import (
	"errors"
	"fmt"
)

// OwnerKind discriminates the two account tables an invitation owner may
// live in. There is deliberately no foreign key across them; Owner is the
// tagged union that replaces the original's loose string comparisons.
type OwnerKind string

const (
	OwnerAdmin OwnerKind = "admin"
	OwnerUser  OwnerKind = "user"
)

// ErrUnknownOwnerKind reports an owner kind outside the admin/user union.
// Every switch over OwnerKind must end in this error, never a silent
// fall-through.
var ErrUnknownOwnerKind = errors.New("domain: unknown owner kind")

// ParseOwnerKind validates a wire/storage discriminator value.
func ParseOwnerKind(s string) (OwnerKind, error) {
	switch OwnerKind(s) {
	case OwnerAdmin:
		return OwnerAdmin, nil
	case OwnerUser:
		return OwnerUser, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOwnerKind, s)
	}
}

// Owner identifies the account that created an invitation.
type Owner struct {
	Kind OwnerKind
	ID   int64
}

func AdminOwner(id int64) Owner { return Owner{Kind: OwnerAdmin, ID: id} }
func UserOwner(id int64) Owner  { return Owner{Kind: OwnerUser, ID: id} }

// Validate rejects malformed owners before they reach storage.
func (o Owner) Validate() error {
	if o.ID <= 0 {
		return fmt.Errorf("domain: owner id must be positive, got %d", o.ID)
	}
	switch o.Kind {
	case OwnerAdmin, OwnerUser:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOwnerKind, o.Kind)
	}
}

// Equal reports whether two owners reference the same account.
func (o Owner) Equal(other Owner) bool {
	return o.Kind == other.Kind && o.ID == other.ID
}

func (o Owner) String() string {
	return fmt.Sprintf("%s/%d", o.Kind, o.ID)
}
