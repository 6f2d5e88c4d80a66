package portalsdk

import (
	"context"
	"net/http"
)

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", req, &resp, http.StatusOK, false)
	if err != nil {
		return LoginResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

// LoginAdmin is a convenience wrapper for admin username/password login.
func (c *Client) LoginAdmin(ctx context.Context, username, password string) (LoginResponse, error) {
	return c.Login(ctx, LoginRequest{Kind: "admin", Login: username, Password: password})
}

// LoginUser is a convenience wrapper for user phone/password login.
func (c *Client) LoginUser(ctx context.Context, phone, password string) (LoginResponse, error) {
	return c.Login(ctx, LoginRequest{Kind: "user", Login: phone, Password: password})
}

// Logout revokes the current session and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil, nil, http.StatusNoContent, true); err != nil {
		return err
	}
	c.token = ""
	return nil
}
