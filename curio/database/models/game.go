package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Game is the local cache of a remote catalog entry. Rows are refreshed when
// FetchedAt is older than the metadata TTL; the pricing job only needs Title.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	RemoteID int64   `bun:"remote_id,pk"`
	Title    string  `bun:"title,notnull"`
	CoverURL string  `bun:"cover_url"`
	Summary  string  `bun:"summary"`
	Rating   float64 `bun:"rating"`

	FetchedAt time.Time `bun:"fetched_at,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
