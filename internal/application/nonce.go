package application

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const nonceBytes = 24

// NewNonce returns a random URL-safe nonce for login and proof requests.
func NewNonce() (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
