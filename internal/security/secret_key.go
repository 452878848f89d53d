package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// MinSecretKeyLength is the shortest SECRET_KEY accepted for signing
// session tokens.
const MinSecretKeyLength = 32

var errSecretKeyTooShort = errors.New("secret key too short")

// GenerateSecretKey returns a cryptographically random hex string suitable
// as a per-run session signing key.
func GenerateSecretKey() (string, error) {
	raw := make([]byte, MinSecretKeyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// ValidateSecretKey rejects keys shorter than MinSecretKeyLength characters.
func ValidateSecretKey(key string) error {
	if len(key) < MinSecretKeyLength {
		return errSecretKeyTooShort
	}
	return nil
}
