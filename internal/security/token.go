package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const registrationTokenBytes = 16

// NewRegistrationToken returns a fresh single-use registration token:
// 16 random bytes rendered as a 32-character hex string.
func NewRegistrationToken() (string, error) {
	buf := make([]byte, registrationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate registration token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SecretsEqual compares a presented secret against the configured one in
// constant time.
func SecretsEqual(presented, configured string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1
}
