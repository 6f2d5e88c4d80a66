package http

import (
	"encoding/json"
	"net/http"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
)

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Registration Endpoint
//	@Description	Redeem an invitation code into a new user account. The invitee's name and phone come from the invitation; only a password is chosen here. The account starts pending admin approval.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	portalsdk.User				"id, full_name, phone, approval_status"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		404		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"error"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Code == "" {
		httpx.WriteError(w, http.StatusBadRequest, "code is required")
		return
	}

	user, err := h.RegistrationService.Register(ctx, service.RegisterRequest{
		Code:     req.Code,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userWire(user))
}
