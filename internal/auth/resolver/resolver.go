package resolver

import (
	"context"
	"errors"
	"fmt"

	"registrant-auth/internal/auth"
)

var (
	// ErrUnauthenticated is wrapped by every rejection. Callers must not tell
	// the reasons apart in responses.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrMissingCredential = fmt.Errorf("%w: missing credential", ErrUnauthenticated)
	ErrInvalidToken      = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
)

// Resolver turns a raw session token into the identity owning it.
// It is the ONLY place where token-to-identity logic lives.
type Resolver interface {
	Resolve(
		ctx context.Context,
		token string,
	) (*auth.Identity, error)
}
