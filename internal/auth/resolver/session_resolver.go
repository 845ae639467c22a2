package resolver

import (
	"context"
	"time"

	"registrant-auth/internal/auth"
	"registrant-auth/internal/registrant"
	"registrant-auth/internal/session"

	"github.com/pkg/errors"
)

// SessionResolver resolves tokens through the session store.
type SessionResolver struct {
	store         session.Store
	enforceExpiry bool
	now           func() time.Time
}

// NewSessionResolver creates a resolver. With enforceExpiry unset the stored
// expiration is informational only and any known token authenticates.
func NewSessionResolver(store session.Store, enforceExpiry bool) *SessionResolver {
	return &SessionResolver{
		store:         store,
		enforceExpiry: enforceExpiry,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (r *SessionResolver) Resolve(
	ctx context.Context,
	token string,
) (*auth.Identity, error) {

	// 1. The header value is the token, verbatim
	if token == "" {
		return nil, ErrMissingCredential
	}

	// 2. Token -> registrant
	var (
		reg *registrant.Registrant
		err error
	)
	if r.enforceExpiry {
		reg, err = r.resolveUnexpired(ctx, token)
	} else {
		reg, err = r.store.FindRegistrantByToken(ctx, token)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session token")
	}

	if reg == nil {
		return nil, ErrInvalidToken
	}

	return &auth.Identity{
		OsuID: reg.OsuID,
		Name:  reg.OsuName,
	}, nil
}

func (r *SessionResolver) resolveUnexpired(
	ctx context.Context,
	token string,
) (*registrant.Registrant, error) {

	sess, err := r.store.FindByToken(ctx, token)
	if err != nil || sess == nil {
		return nil, err
	}

	if sess.Expired(r.now()) {
		return nil, nil
	}

	return r.store.GetRegistrantByOsuID(ctx, sess.OsuID)
}
