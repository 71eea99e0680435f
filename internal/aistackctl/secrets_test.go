package aistackctl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEncryptionKey(t *testing.T) {
	t.Parallel()

	key, err := GenerateEncryptionKey()
	require.NoError(t, err)
	assert.Len(t, key, EncryptionKeyLength)
	assert.NoError(t, ValidateEncryptionKey(key))

	other, err := GenerateEncryptionKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestGenerateJWTSecret(t *testing.T) {
	t.Parallel()

	secret, err := GenerateJWTSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 2*MinJWTSecretLength)
	assert.NoError(t, ValidateJWTSecret(secret))
}

func TestGeneratePasswordAlphabet(t *testing.T) {
	t.Parallel()

	pass, err := GeneratePassword(20)
	require.NoError(t, err)
	assert.Len(t, pass, 20)
	for _, r := range pass {
		assert.True(t, strings.ContainsRune(secretAlphabet, r), string(r))
	}
}

func TestValidateEncryptionKey(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEncryptionKey(strings.Repeat("a", 32)))
	assert.Error(t, ValidateEncryptionKey(""))
	assert.Error(t, ValidateEncryptionKey(strings.Repeat("a", 31)))
	assert.Error(t, ValidateEncryptionKey(strings.Repeat("a", 33)))
}

func TestValidateJWTSecret(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateJWTSecret(strings.Repeat("a", 16)))
	assert.NoError(t, ValidateJWTSecret(strings.Repeat("a", 64)))
	assert.Error(t, ValidateJWTSecret(strings.Repeat("a", 15)))
	assert.Error(t, ValidateJWTSecret(""))
}
