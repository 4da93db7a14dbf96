package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewLeadToken returns a URL-safe token with 256 bits of entropy,
// used to gate the guest request workflow.
func NewLeadToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewRefreshToken returns an opaque refresh token.
func NewRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
