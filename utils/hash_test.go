package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordDeterministic(t *testing.T) {
	digest := HashPassword("secret", "0123456789abcdef")
	again := HashPassword("secret", "0123456789abcdef")
	assert.Equal(t, digest, again)
	assert.Len(t, digest, 128) // hex-encoded SHA-512
}

func TestHashPasswordSaltChangesDigest(t *testing.T) {
	a := HashPassword("secret", "aaaaaaaaaaaaaaaa")
	b := HashPassword("secret", "bbbbbbbbbbbbbbbb")
	assert.NotEqual(t, a, b)
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt(16)
	require.NoError(t, err)
	assert.Len(t, salt, 16)
	assert.Regexp(t, "^[0-9a-f]+$", salt)

	other, err := GenerateSalt(16)
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestGenerateSaltOddLength(t *testing.T) {
	salt, err := GenerateSalt(7)
	require.NoError(t, err)
	assert.Len(t, salt, 7)
}
