package http

import (
	"net/http"
	"strconv"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
)

// InvitationsGetHandler serves GET /v1/invitations. A ?code= query makes it
// the public code-validation endpoint; without one it is the authenticated
// paginated listing.
type InvitationsGetHandler struct {
	InvitationService *service.InvitationService
	Sessions          service.SessionValidator
}

// ServeHTTP godoc
//
//	@Summary		Invitation Listing and Code Validation
//	@Description	Without a code parameter, returns a page of invitations visible to the caller (admins see all, users only their own). Requires a bearer token.
//	@Description	With ?code=<64 hex chars>, validates a registration code without authentication and reports whether it is redeemable.
//	@Tags			Invitations
//	@Produce		json
//	@Param			code	query		string								false	"Invitation code to validate (public mode)"
//	@Param			page	query		int									false	"Page number, 1-based"
//	@Param			status	query		string								false	"Status filter: pending, used or expired"
//	@Param			search	query		string								false	"Substring filter on invitee name or phone"
//	@Success		200		{object}	portalsdk.ListInvitationsResponse	"invitations, pagination"
//	@Failure		400		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		401		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		404		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse				"error"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationsGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if code := r.URL.Query().Get("code"); code != "" {
		h.validate(w, r, code)
		return
	}
	h.list(w, r)
}

func (h *InvitationsGetHandler) validate(w http.ResponseWriter, r *http.Request, code string) {
	ctx := r.Context()

	outcome, err := h.InvitationService.ValidateCode(ctx, code)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := portalsdk.ValidateCodeResponse{
		Valid:   outcome.Valid,
		Status:  string(outcome.Status),
		Message: outcome.Message,
	}
	if outcome.Invitation != nil {
		inv := invitationWire(outcome.Invitation.Invitation, outcome.Invitation.InviterName)
		resp.Invitation = &inv
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *InvitationsGetHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := httpx.BearerToken(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	principal, err := h.Sessions.Authorize(ctx, token)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	q := r.URL.Query()
	page := 0
	if raw := q.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		page = parsed
	}

	result, err := h.InvitationService.List(ctx, principal, service.ListRequest{
		Page:   page,
		Status: q.Get("status"),
		Search: q.Get("search"),
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ListInvitationsResponse{
		Invitations: invitationRowsWire(result.Invitations),
		Pagination:  paginationWire(result.Pagination),
		Principal:   principalWire(principal),
	})
}
