package registrant

import (
	"context"

	"registrant-auth/internal/db"
)

type PostgresStore struct {
	table db.Table[Registrant]
}

func NewPostgresStore(d *db.DB) *PostgresStore {
	return &PostgresStore{table: db.NewTable[Registrant](d, "registrants",
		"id", "created", "updated", "osu_id", "osu_name")}
}

func (s *PostgresStore) GetByOsuID(ctx context.Context, osuID int64) (*Registrant, error) {
	return s.table.GetBy(ctx, "osu_id", osuID)
}
