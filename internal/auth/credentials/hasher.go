package credentials

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// HashSecret returns the base64 SHA-256 digest of secret. This is the value
// operators configure as the session generation phrase.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifySecret reports whether proof hashes to expectedDigest. The
// comparison runs in constant time for digests of equal length.
func VerifySecret(proof string, expectedDigest string) bool {
	actual := HashSecret(proof)
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expectedDigest)) == 1
}
