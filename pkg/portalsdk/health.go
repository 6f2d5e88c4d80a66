package portalsdk

import (
	"context"
	"net/http"
)

// Livez hits the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp, http.StatusOK, false); err != nil {
		return HealthResponse{}, err
	}
	return resp, nil
}

// Readyz hits the readiness probe. A degraded service surfaces as an
// *APIError with status 503.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp, http.StatusOK, false); err != nil {
		return HealthResponse{}, err
	}
	return resp, nil
}
