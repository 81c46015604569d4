package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	salt, hash, err := HashPassword("guessme")
	require.NoError(t, err)

	saltRaw, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, saltRaw, 16)

	hashRaw, err := hex.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, hashRaw, 64)
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	salt1, hash1, err := HashPassword("guessme")
	require.NoError(t, err)
	salt2, hash2, err := HashPassword("guessme")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword(t *testing.T) {
	salt, hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse battery staple", salt, hash))
	assert.False(t, VerifyPassword("correct horse battery stapl", salt, hash))
	assert.False(t, VerifyPassword("", salt, hash))
}

func TestVerifyPassword_BadStoredMaterial(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-hex", "not-hex"))
	assert.False(t, VerifyPassword("anything", "abcd", "abcd"))
}
