package aistackctl

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// EncryptionKeyLength is the exact length the application requires for
	// its data encryption key.
	EncryptionKeyLength = 32

	// MinJWTSecretLength is the minimum accepted JWT secret length.
	// Generated secrets use twice that.
	MinJWTSecretLength = 16
)

const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateEncryptionKey returns a random key of exactly EncryptionKeyLength
// characters. Failure means the secure random source is unavailable, which
// aborts an unattended run.
func GenerateEncryptionKey() (string, error) {
	return randomToken(EncryptionKeyLength)
}

// GenerateJWTSecret returns a random secret of 2*MinJWTSecretLength characters.
func GenerateJWTSecret() (string, error) {
	return randomToken(2 * MinJWTSecretLength)
}

// GeneratePassword returns a random password of n characters.
func GeneratePassword(n int) (string, error) {
	return randomToken(n)
}

func randomToken(n int) (string, error) {
	max := big.NewInt(int64(len(secretAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("secure random source unavailable: %w", err)
		}
		buf[i] = secretAlphabet[idx.Int64()]
	}
	return string(buf), nil
}

// ValidateEncryptionKey enforces the exact-length constraint for manually
// entered keys.
func ValidateEncryptionKey(s string) error {
	if len(s) != EncryptionKeyLength {
		return fmt.Errorf("encryption key must be exactly %d characters, got %d", EncryptionKeyLength, len(s))
	}
	return nil
}

// ValidateJWTSecret enforces the minimum-length constraint for manually
// entered secrets.
func ValidateJWTSecret(s string) error {
	if len(s) < MinJWTSecretLength {
		return fmt.Errorf("JWT secret must be at least %d characters, got %d", MinJWTSecretLength, len(s))
	}
	return nil
}
