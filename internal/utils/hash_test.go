package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw1", hash, "hash must not equal the plaintext")
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)

	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt per hash
	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword(hash, ""))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "correct-password"))
}
