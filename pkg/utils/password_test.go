package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	require.True(t, CheckPassword("correct horse battery staple", hash))
	require.False(t, CheckPassword("wrong password", hash))
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("segredo123")
	require.NoError(t, err)

	second, err := HashPassword("segredo123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, CheckPassword("segredo123", first))
	require.True(t, CheckPassword("segredo123", second))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	require.False(t, CheckPassword("anything", "not-a-phc-string"))
	require.False(t, CheckPassword("anything", "$argon2id$v=19$m=65536,t=1,p=4$bad"))
	require.False(t, CheckPassword("anything", ""))
}
