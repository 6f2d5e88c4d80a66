package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kcdforg/parentsclub-sub003/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("livez", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/livez", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[portalsdk.HealthResponse](t, rec)
		require.Equal(t, "ok", resp.Status)
		require.Equal(t, "test", resp.Version)
	})

	t.Run("readyz reports the database", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/readyz", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[portalsdk.HealthResponse](t, rec)
		require.Equal(t, "ok", resp.Status)
		require.Equal(t, "ok", resp.Checks.Database)
	})
}

func TestLoginRateLimit(t *testing.T) {
	env := newTestEnv(t)
	seedAdminAccount(t, env.store, "frontdesk", "adminpass123")

	body, err := json.Marshal(portalsdk.LoginRequest{
		Kind: "admin", Login: "frontdesk", Password: "wrong",
	})
	require.NoError(t, err)

	// Same client IP for every attempt; the strict profile allows five per
	// minute before the limiter steps in.
	attempt := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("X-Forwarded-For", "198.51.100.7")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusUnauthorized, attempt().Code, "attempt %d", i+1)
	}

	rec := attempt()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other clients are unaffected.
	rec = env.do(t, http.MethodPost, "/v1/auth/login", "", portalsdk.LoginRequest{
		Kind: "admin", Login: "frontdesk", Password: "adminpass123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}
