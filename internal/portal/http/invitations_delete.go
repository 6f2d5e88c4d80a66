package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
)

// InvitationsDeleteHandler serves DELETE /v1/invitations/{id} and the
// body-addressed DELETE /v1/invitations form.
type InvitationsDeleteHandler struct {
	InvitationService *service.InvitationService
	Sessions          service.SessionValidator
}

// ServeHTTP godoc
//
//	@Summary		Invitation Deletion Endpoint
//	@Description	Permanently delete an invitation. Admins may delete any invitation; users only invitations they created.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	int	true	"Invitation id"
//	@Success		204	"invitation deleted"
//	@Failure		400	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		403	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationsDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var id int64
	if raw := r.PathValue("id"); raw != "" {
		id, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, "invitation id must be a positive integer")
			return
		}
	} else {
		var req portalsdk.InvitationMutationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.InvitationID <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, "invitation_id is required")
			return
		}
		id = req.InvitationID
	}

	if err := h.InvitationService.Delete(ctx, principal, id); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
