package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"
)

// ErrInvalidReview rejects review decisions other than approved/rejected.
var ErrInvalidReview = errors.New("review decision must be approved or rejected")

// UserService covers admin review of registered users.
type UserService struct {
	Store store.Store
}

// Review records an admin's decision over a pending user. Approval is what
// turns a registered account into one that can log in and invite.
func (s *UserService) Review(
	ctx context.Context,
	p domain.Principal,
	userID int64,
	decision domain.ApprovalStatus,
) (domain.User, error) {
	if !p.CanManageAll {
		return domain.User{}, ErrForbidden
	}
	if decision != domain.ApprovalApproved && decision != domain.ApprovalRejected {
		return domain.User{}, ErrInvalidReview
	}

	if err := s.Store.Users().SetApprovalStatus(ctx, userID, decision); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user reviewed",
		slog.Int64("user_id", userID),
		slog.String("decision", string(decision)),
		slog.String("reviewed_by", p.Owner.String()),
	)
	return user, nil
}
