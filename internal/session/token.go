package session

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
)

// TokenSize is the number of random bytes behind every token (256 bits).
const TokenSize = 32

// GenerateToken returns a fresh opaque token: TokenSize bytes from the
// system CSPRNG, base64url encoded without padding so it can be sent as a
// header value verbatim.
func GenerateToken() (string, error) {
	return generateToken(rand.Reader)
}

func generateToken(src io.Reader) (string, error) {
	b := make([]byte, TokenSize)
	if _, err := io.ReadFull(src, b); err != nil {
		return "", errors.Wrap(err, "session: secure random source unavailable")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
