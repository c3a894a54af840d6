package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := New("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccess("user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := New("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateRefresh("user-1", "alice")
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyAccessRejectsRefreshToken(t *testing.T) {
	// The two kinds are signed with distinct secrets, so one is never valid
	// where the other is expected.
	svc := New("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	refresh, err := svc.GenerateRefresh("user-1", "alice")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := New("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	other := New("other-access", "other-refresh", 15*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccess("user-1", "alice")
	require.NoError(t, err)

	_, err = other.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	refresh, err := svc.GenerateRefresh("user-1", "alice")
	require.NoError(t, err)

	_, err = other.VerifyRefresh(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := New("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	_, err := svc.VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyRefresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessEnforcesExpiry(t *testing.T) {
	svc := New("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccess("user-1", "alice")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshLeavesExpiryToCaller(t *testing.T) {
	// An expired refresh token still verifies; the claims carry the past
	// expiry for the auth service to judge.
	svc := New("access-secret", "refresh-secret", 15*time.Minute, -time.Minute)

	token, err := svc.GenerateRefresh("user-1", "alice")
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}
