package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
}

func TestHashPasswordIsNotPlaintext(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.NotContains(t, hash, "password123")
	assert.True(t, strings.HasPrefix(hash, "pbkdf2:sha256:"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	// Distinct salts, distinct encodings, both verify
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(first, "password123"))
	assert.True(t, VerifyPassword(second, "password123"))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, hash := range []string{
		"",
		"plaintext",
		"pbkdf2:sha256:notanumber$c2FsdA$aGFzaA",
		"pbkdf2:md5:1000$c2FsdA$aGFzaA",
		"pbkdf2:sha256:1000$!!!$aGFzaA",
		"pbkdf2:sha256:1000$c2FsdA",
	} {
		assert.False(t, VerifyPassword(hash, "password123"), "hash %q", hash)
	}
}
