package http

import (
	"encoding/json"
	"net/http"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
)

// InvitationsPostHandler serves POST and PUT /v1/invitations. A body
// without an action creates a new invitation (POST only); a body with one
// applies that lifecycle action to an existing invitation.
type InvitationsPostHandler struct {
	InvitationService *service.InvitationService
	Sessions          service.SessionValidator
}

// ServeHTTP godoc
//
//	@Summary		Invitation Creation and Lifecycle Actions
//	@Description	Without an action field, creates an invitation from invited_name and invited_phone and returns it with its registration link.
//	@Description	With action set to approve, reject, resend or cancel, applies that transition to invitation_id (admin only). Approve and resend re-open the invitation with a fresh expiry; reject and cancel expire it.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.InvitationMutationRequest	true	"Create or action request"
//	@Success		200		{object}	portalsdk.ActionResponse			"invitation (action mode)"
//	@Success		201		{object}	portalsdk.CreateInvitationResponse	"invitation, link (create mode)"
//	@Failure		400		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		401		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		404		{object}	portalsdk.ErrorResponse				"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse				"error"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationsPostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req portalsdk.InvitationMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Action == "" {
		// PUT is accepted for transitions only.
		if r.Method == http.MethodPut {
			httpx.WriteError(w, http.StatusBadRequest, "action is required")
			return
		}
		h.create(w, r, principal, req)
		return
	}
	h.action(w, r, principal, req)
}

func (h *InvitationsPostHandler) create(
	w http.ResponseWriter,
	r *http.Request,
	principal domain.Principal,
	req portalsdk.InvitationMutationRequest,
) {
	ctx := r.Context()

	result, err := h.InvitationService.Create(ctx, principal, service.CreateRequest{
		InvitedName:  req.InvitedName,
		InvitedPhone: req.InvitedPhone,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalsdk.CreateInvitationResponse{
		Invitation: invitationWire(result.Invitation, principal.DisplayName),
		Link:       result.Link,
	})
}

func (h *InvitationsPostHandler) action(
	w http.ResponseWriter,
	r *http.Request,
	principal domain.Principal,
	req portalsdk.InvitationMutationRequest,
) {
	ctx := r.Context()

	action, err := domain.ParseInvitationAction(req.Action)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "action must be approve, reject, resend or cancel")
		return
	}
	if req.InvitationID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "invitation_id is required")
		return
	}

	inv, err := h.InvitationService.HandleAction(ctx, principal, req.InvitationID, action)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ActionResponse{
		Invitation: invitationWire(inv, ""),
	})
}
