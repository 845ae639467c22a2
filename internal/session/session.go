package session

import (
	"context"
	"errors"
	"time"

	"registrant-auth/internal/logger"
	"registrant-auth/internal/registrant"
)

// Lifetime is how far ahead of its creation a session expires.
const Lifetime = 7 * 24 * time.Hour

// ErrUpsertFailed is returned by Store.Upsert whenever the backend could not
// persist the session. The cause is logged, not returned.
var ErrUpsertFailed = errors.New("session: failed to create session")

// Session is the credential record of one registrant. There is at most one
// per osu id; issuing again replaces it in place.
type Session struct {
	ID        int64      `json:"id" db:"id"`
	CreatedAt time.Time  `json:"created" db:"created"`
	UpdatedAt *time.Time `json:"updated" db:"updated"`
	OsuID     int64      `json:"osuId" db:"osu_id"`
	Token     string     `json:"token" db:"token"`
	ExpiresAt time.Time  `json:"expiration" db:"expiration"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions and resolves tokens to registrants.
// Lookups that match nothing return (nil, nil); errors mean the backend
// failed.
type Store interface {
	// FindRegistrantByToken resolves token to its session and then to the
	// registrant owning it.
	FindRegistrantByToken(ctx context.Context, token string) (*registrant.Registrant, error)

	FindByToken(ctx context.Context, token string) (*Session, error)

	// Upsert creates the session for s.OsuID or atomically replaces its
	// token, creation and expiry time, setting the update time.
	Upsert(ctx context.Context, s Session) (*Session, error)

	GetRegistrantByOsuID(ctx context.Context, osuID int64) (*registrant.Registrant, error)
}

func upsertFailed(osuID int64, err error) error {
	logger.Error("failed to create session", map[string]any{
		"osu_id": osuID,
		"error":  err.Error(),
	})
	return ErrUpsertFailed
}

func validate(s Session) error {
	if s.OsuID == 0 || s.Token == "" {
		return errors.New("session: missing osu_id or token")
	}
	if s.ExpiresAt.IsZero() {
		return errors.New("session: missing expiration")
	}
	return nil
}

// findRegistrant is the two-step token lookup shared by the backends.
func findRegistrant(
	ctx context.Context,
	store Store,
	registrants registrant.Store,
	token string,
) (*registrant.Registrant, error) {

	sess, err := store.FindByToken(ctx, token)
	if err != nil || sess == nil {
		return nil, err
	}

	return registrants.GetByOsuID(ctx, sess.OsuID)
}
