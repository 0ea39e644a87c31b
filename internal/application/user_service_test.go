package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/devconnector/devconnector/pkg/helpers"
)

func newTestUserService(users *memUserRepo) *UserService {
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	return NewUserService(users, jwt, nil, "", nil, nil, "", nil, false)
}

func TestRegisterIssuesTokensAndGravatar(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestUserService(users)

	u, pair, err := svc.Register(context.Background(), "Ada", "Ada@Example.COM ", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// avatar is derived from the normalized email
	require.True(t, strings.HasPrefix(u.AvatarURL, "https://www.gravatar.com/avatar/"))
	require.Contains(t, u.AvatarURL, "d=mm")

	// stored hash is not the plaintext password
	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.Password)
	require.True(t, helpers.CompareHashAndPassword(stored.Password, "secret123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestUserService(users)

	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Other Ada", "ada@example.com", "different")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestUserService(users)
	_, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	u, pair, err := svc.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "Ada", u.Name)
	require.NotEmpty(t, pair.AccessToken)

	_, _, err = svc.Login("ada@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesPair(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestUserService(users)
	u, pair, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)

	claims, err := svc.JWT.ParseAccessToken(rotated.AccessToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)

	// access tokens are not valid refresh tokens
	_, err = svc.Refresh(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Refresh("garbage")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestUserService(users)
	u, _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	got, err := svc.Me(u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)

	_, err = svc.Me("nonexistent")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchWithoutES(t *testing.T) {
	svc := newTestUserService(newMemUserRepo())
	res, err := svc.Search(context.Background(), "ada", 10)
	require.NoError(t, err)
	require.Empty(t, res)
}
