package session

import (
	"context"
	"time"

	"registrant-auth/internal/db"
	"registrant-auth/internal/registrant"

	"github.com/pkg/errors"
)

var sessionColumns = []string{
	"id",
	"created",
	"updated",
	"osu_id",
	"token",
	"expiration",
}

// upsertQuery relies on the unique osu_id constraint: concurrent issuances
// for one registrant serialize in PostgreSQL and the last commit wins.
const upsertQuery = `
INSERT INTO sessions (osu_id, token, created, expiration)
VALUES ($1, $2, $3, $4)
ON CONFLICT (osu_id) DO UPDATE
SET token = EXCLUDED.token,
    created = EXCLUDED.created,
    expiration = EXCLUDED.expiration,
    updated = $5
RETURNING id, created, updated, osu_id, token, expiration`

type PostgresStore struct {
	table       db.Table[Session]
	registrants registrant.Store
	now         func() time.Time
}

// NewPostgresStore creates a PostgreSQL-backed session store. Registrants are
// read through registrants.
func NewPostgresStore(d *db.DB, registrants registrant.Store) *PostgresStore {
	return &PostgresStore{
		table:       db.NewTable[Session](d, "sessions", sessionColumns...),
		registrants: registrants,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (p *PostgresStore) FindRegistrantByToken(ctx context.Context, token string) (*registrant.Registrant, error) {
	return findRegistrant(ctx, p, p.registrants, token)
}

func (p *PostgresStore) FindByToken(ctx context.Context, token string) (*Session, error) {
	return p.table.GetBy(ctx, "token", token)
}

func (p *PostgresStore) GetRegistrantByOsuID(ctx context.Context, osuID int64) (*registrant.Registrant, error) {
	return p.registrants.GetByOsuID(ctx, osuID)
}

func (p *PostgresStore) Upsert(ctx context.Context, s Session) (*Session, error) {
	if err := validate(s); err != nil {
		return nil, upsertFailed(s.OsuID, err)
	}

	out, err := db.GetOne[Session](ctx, p.table.DB(), upsertQuery,
		s.OsuID,
		s.Token,
		s.CreatedAt,
		s.ExpiresAt,
		p.now(),
	)
	if err == nil && out == nil {
		err = errors.New("upsert returned no row")
	}
	if err != nil {
		return nil, upsertFailed(s.OsuID, errors.Wrap(err, "failed to upsert session"))
	}

	return out, nil
}
