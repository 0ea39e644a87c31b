package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGravatarURL(t *testing.T) {
	// known md5 of "ada@example.com"
	url := GravatarURL("ada@example.com")
	require.Contains(t, url, "https://www.gravatar.com/avatar/")
	require.Contains(t, url, "?s=200&r=pg&d=mm")

	// normalization: case and surrounding whitespace do not change the hash
	require.Equal(t, url, GravatarURL("  Ada@Example.COM  "))
	require.NotEqual(t, url, GravatarURL("other@example.com"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)
	require.True(t, CompareHashAndPassword(hash, "secret123"))
	require.False(t, CompareHashAndPassword(hash, "wrong"))
}
