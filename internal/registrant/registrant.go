package registrant

import (
	"context"
	"time"
)

// Registrant is a user linked to an osu! account. Registrants are created
// by the registration flow; this service only reads them.
type Registrant struct {
	ID        int64      `json:"id" db:"id"`
	CreatedAt time.Time  `json:"created" db:"created"`
	UpdatedAt *time.Time `json:"updated" db:"updated"`
	OsuID     int64      `json:"osuId" db:"osu_id"`
	OsuName   string     `json:"osuName" db:"osu_name"`
}

// Store reads registrants. A missing registrant is (nil, nil).
type Store interface {
	GetByOsuID(ctx context.Context, osuID int64) (*Registrant, error)
}
