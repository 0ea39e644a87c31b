package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, exp, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestJWTSecretsAreSeparate(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	require.Error(t, err)
	_, err = m.ParseRefreshToken(access)
	require.Error(t, err)

	claims, err := m.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestJWTExpiry(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)
	access, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(access)
	require.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	_, err := m.ParseAccessToken("garbage")
	require.Error(t, err)
}
