package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/domain"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate an account and obtain a bearer session token. Admins log in by username, users by phone number.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	portalsdk.LoginResponse	"token, token_type, expires_at, principal"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"error"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse	"error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	kind, err := domain.ParseOwnerKind(req.Kind)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "kind must be admin or user")
		return
	}
	if req.Login == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	token, principal, err := h.AuthService.Login(ctx, kind, req.Login, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: time.Now().UTC().Add(h.AuthService.TokenTTL()),
		Principal: principalWire(principal),
	})
}

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Revoke the bearer session token. The token is unusable immediately afterwards.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"session revoked"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := httpx.BearerToken(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	if err := h.AuthService.Logout(ctx, token); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
