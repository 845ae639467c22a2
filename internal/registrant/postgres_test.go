package registrant

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"registrant-auth/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getByOsuIDQuery = "SELECT id, created, updated, osu_id, osu_name FROM registrants WHERE osu_id = $1"

func newPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewPostgresStore(db.Wrap(sqlx.NewDb(conn, "postgres"))), mock
}

func TestPostgresStore_GetByOsuID(t *testing.T) {
	store, mock := newPostgresStore(t)
	created := time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(getByOsuIDQuery)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "updated", "osu_id", "osu_name"}).
			AddRow(int64(5), created, updated, int64(42), "cookiezi"))

	got, err := store.GetByOsuID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, Registrant{
		ID:        5,
		CreatedAt: created,
		UpdatedAt: &updated,
		OsuID:     42,
		OsuName:   "cookiezi",
	}, *got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetByOsuID_Missing(t *testing.T) {
	store, mock := newPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByOsuIDQuery)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "updated", "osu_id", "osu_name"}))

	got, err := store.GetByOsuID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetByOsuID_Failure(t *testing.T) {
	store, mock := newPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByOsuIDQuery)).
		WillReturnError(errors.New("too many connections"))

	got, err := store.GetByOsuID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to find registrants by osu_id")
	assert.NoError(t, mock.ExpectationsWereMet())
}
