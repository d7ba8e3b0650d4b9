package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes gives 256 bits of entropy, 64 hex characters encoded.
const sessionTokenBytes = 32

// NewSessionToken returns a cryptographically random opaque token. The token
// carries no decodable structure; it is only a lookup key for session state
// held server-side.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
