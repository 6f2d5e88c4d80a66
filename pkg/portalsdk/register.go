package portalsdk

import (
	"context"
	"net/http"
)

// Register redeems an invitation code into a new user account. The account
// starts pending admin approval.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/v1/register", req, &user, http.StatusCreated, false); err != nil {
		return User{}, err
	}
	return user, nil
}

// ReviewUser records an admin approval decision over a registered user.
func (c *Client) ReviewUser(ctx context.Context, req ReviewUserRequest) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/v1/users/review", req, &user, http.StatusOK, true); err != nil {
		return User{}, err
	}
	return user, nil
}
