package portalsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListInvitationsParams filters and pages the invitation listing.
type ListInvitationsParams struct {
	Page   int    // 1-based; zero means the first page
	Status string // optional: pending, used or expired
	Search string // optional substring filter on invitee name/phone
}

// ListInvitations returns one page of invitations visible to the caller.
func (c *Client) ListInvitations(ctx context.Context, p ListInvitationsParams) (ListInvitationsResponse, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}

	path := "/v1/invitations"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp ListInvitationsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK, true); err != nil {
		return ListInvitationsResponse{}, err
	}
	return resp, nil
}

// CreateInvitation mints a new invitation for the given invitee.
func (c *Client) CreateInvitation(ctx context.Context, name, phone string) (CreateInvitationResponse, error) {
	req := InvitationMutationRequest{
		InvitedName:  name,
		InvitedPhone: phone,
	}
	var resp CreateInvitationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invitations", req, &resp, http.StatusCreated, true); err != nil {
		return CreateInvitationResponse{}, err
	}
	return resp, nil
}

// InvitationAction applies a lifecycle action (approve, reject, resend or
// cancel) to an invitation. Admin only.
func (c *Client) InvitationAction(ctx context.Context, id int64, action string) (ActionResponse, error) {
	req := InvitationMutationRequest{
		Action:       action,
		InvitationID: id,
	}
	var resp ActionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/invitations", req, &resp, http.StatusOK, true); err != nil {
		return ActionResponse{}, err
	}
	return resp, nil
}

// DeleteInvitation permanently removes an invitation.
func (c *Client) DeleteInvitation(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/v1/invitations/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent, true)
}

// ValidateCode checks a registration code. This is a public call; no
// authentication is required.
func (c *Client) ValidateCode(ctx context.Context, code string) (ValidateCodeResponse, error) {
	path := "/v1/invitations?code=" + url.QueryEscape(code)
	var resp ValidateCodeResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK, false); err != nil {
		return ValidateCodeResponse{}, err
	}
	return resp, nil
}
