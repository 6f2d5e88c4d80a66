package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"
)

// writeServiceError maps a service error to the API's error taxonomy:
// validation and conflict failures are 400, auth failures 401, capability
// failures 403, missing resources 404 and everything else a logged 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrPhoneRequired),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidReview),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPhoneRegistered),
		errors.Is(err, service.ErrPhoneHasProfile),
		errors.Is(err, service.ErrInvitePending),
		errors.Is(err, service.ErrInvitationUsed),
		errors.Is(err, service.ErrInvitationExpired):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrBadCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrAccountNotApproved):
		httpx.WriteError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())

	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

// methodNotAllowed backstops a path whose supported methods are registered
// with method-specific patterns, so unknown methods get the standard JSON
// error body instead of the mux's plain-text default.
func methodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}
