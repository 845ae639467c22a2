package credentials

import (
	"context"
	"errors"
	"time"

	"registrant-auth/internal/logger"
	"registrant-auth/internal/session"
)

var (
	ErrConfigurationMissing = errors.New("session generation phrase is not set in configuration")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSessionCreation      = errors.New("failed to create session")
)

// Service issues sessions to privileged callers that prove knowledge of the
// session generation phrase.
type Service struct {
	digest        string
	store         session.Store
	now           func() time.Time
	generateToken func() (string, error)
}

// NewService creates an issuer. digest is the configured base64 SHA-256
// digest of the generation phrase; empty means it was not configured.
func NewService(digest string, store session.Store) *Service {
	return &Service{
		digest:        digest,
		store:         store,
		now:           func() time.Time { return time.Now().UTC() },
		generateToken: session.GenerateToken,
	}
}

// Issue creates or rotates the session of osuID. The returned session
// carries the plaintext token; it is never disclosed again.
func (s *Service) Issue(
	ctx context.Context,
	osuID int64,
	proof string,
) (*session.Session, error) {

	// 1. Secret must be configured
	if s.digest == "" {
		logger.Error("session generation phrase is not set in configuration", nil)
		return nil, ErrConfigurationMissing
	}

	// 2. Verify proof
	if !VerifySecret(proof, s.digest) {
		return nil, ErrInvalidCredentials
	}

	// 3. Mint token
	token, err := s.generateToken()
	if err != nil {
		logger.Error("failed to generate session token", map[string]any{
			"osu_id": osuID,
			"error":  err.Error(),
		})
		return nil, ErrSessionCreation
	}

	now := s.now()

	// 4. Persist, replacing any previous session of osuID
	sess, err := s.store.Upsert(ctx, session.Session{
		OsuID:     osuID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(session.Lifetime),
	})
	if err != nil {
		return nil, ErrSessionCreation
	}

	logger.Info("session issued", map[string]any{
		"osu_id":     osuID,
		"expiration": sess.ExpiresAt.Unix(),
	})

	return sess, nil
}
