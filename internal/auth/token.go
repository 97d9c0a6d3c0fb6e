package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// OpaqueTokenTTL is the lifetime of email-verification and password-reset
// tokens from the moment of issuance.
const OpaqueTokenTTL = 24 * time.Hour

// GenerateOpaqueToken creates a random one-time token. The plain value is
// sent to the user; only the hash may be persisted.
func GenerateOpaqueToken() (plain string, hashed string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(buf)
	return plain, HashToken(plain), nil
}

// HashToken returns the sha256 hex digest used for token lookups.
func HashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// OpaqueTokenExpiry returns the expiry timestamp for a token issued now.
func OpaqueTokenExpiry() time.Time {
	return time.Now().Add(OpaqueTokenTTL)
}
