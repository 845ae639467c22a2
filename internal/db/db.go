package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const driverName = "postgres"

// DB is the shared PostgreSQL handle. Statements borrow a pooled connection
// for their own duration only.
type DB struct {
	*sqlx.DB
}

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, dsn string) (*DB, error) {
	sqlDB, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "failed to reach database")
	}

	return &DB{DB: sqlDB}, nil
}

// Wrap adopts an existing sqlx handle, e.g. one backed by sqlmock.
func Wrap(sqlDB *sqlx.DB) *DB {
	return &DB{DB: sqlDB}
}
