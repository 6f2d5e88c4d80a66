package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256SignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("test-secret"), "portal-test")
	now := time.Now().UTC()

	claims := NewSessionClaims("42", "session-123", "user", "portal-test", time.Hour, now)
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "42", parsed.Subject)
	require.Equal(t, "session-123", parsed.SID)
	require.Equal(t, "user", parsed.Kind)
	require.Equal(t, "portal-test", parsed.Issuer)
}

func TestHS256RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("secret-a"), "portal-test")
	other := NewHS256([]byte("secret-b"), "portal-test")

	claims := NewSessionClaims("1", "sid", "admin", "portal-test", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestHS256RejectsExpired(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("test-secret"), "portal-test")
	past := time.Now().UTC().Add(-2 * time.Hour)

	claims := NewSessionClaims("1", "sid", "admin", "portal-test", time.Hour, past)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256RejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("test-secret"), "portal-test")

	claims := NewSessionClaims("1", "sid", "admin", "someone-else", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256RejectsGarbage(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("test-secret"), "portal-test")

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := signer.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}
