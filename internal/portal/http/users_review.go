package http

import (
	"encoding/json"
	"net/http"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
)

type UsersReviewHandler struct {
	UserService *service.UserService
	Sessions    service.SessionValidator
}

// ServeHTTP godoc
//
//	@Summary		User Review Endpoint
//	@Description	Approve or reject a registered user. Only approved users can log in and create invitations. Admin only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.ReviewUserRequest	true	"Review decision"
//	@Success		200		{object}	portalsdk.User				"reviewed user"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		403		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		404		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/v1/users/review [post].
func (h *UsersReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req portalsdk.ReviewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	decision, err := domain.ParseApprovalStatus(req.Decision)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "decision must be approved or rejected")
		return
	}

	user, err := h.UserService.Review(ctx, principal, req.UserID, decision)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userWire(user))
}
