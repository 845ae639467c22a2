package db

import (
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
)

// Migrations holds the schema owned by this service. The registrants table
// belongs to the registration flow; it is only created here when absent so
// a fresh database is usable.
var Migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001_registrants",
			Up: []string{`
CREATE TABLE IF NOT EXISTS registrants (
    id serial PRIMARY KEY,
    created timestamptz NOT NULL DEFAULT NOW(),
    updated timestamptz,
    osu_id bigint NOT NULL,
    osu_name text NOT NULL,
    CONSTRAINT registrants_osu_id_unique UNIQUE (osu_id)
);`},
			Down: []string{`DROP TABLE IF EXISTS registrants;`},
		},
		{
			Id: "0002_sessions",
			Up: []string{`
CREATE TABLE IF NOT EXISTS sessions (
    id serial PRIMARY KEY,
    created timestamptz NOT NULL,
    updated timestamptz,
    osu_id bigint NOT NULL,
    token text NOT NULL,
    expiration timestamptz NOT NULL,
    CONSTRAINT sessions_osu_id_unique UNIQUE (osu_id)
);`, `
CREATE UNIQUE INDEX IF NOT EXISTS sessions_token_unique
ON sessions (token);`},
			Down: []string{`DROP TABLE IF EXISTS sessions;`},
		},
	},
}

// Migrate applies (or with migrate.Down, reverts) the schema and reports how
// many migrations ran.
func Migrate(d *DB, dir migrate.MigrationDirection) (int, error) {
	n, err := migrate.Exec(d.DB.DB, driverName, Migrations, dir)
	if err != nil {
		return n, errors.Wrap(err, "failed to run migrations")
	}
	return n, nil
}
