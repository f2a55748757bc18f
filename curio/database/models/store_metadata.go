package models

import (
	"time"

	"github.com/uptrace/bun"
)

// GameStoreMetadata maps a game to its storefront catalog id for one
// (platform, region). Written once on successful resolution and never updated;
// absence only means the id has not been resolved yet.
type GameStoreMetadata struct {
	bun.BaseModel `bun:"table:game_store_metadata,alias:gsm"`

	ID           int64  `bun:"id,pk,autoincrement"`
	GameRemoteID int64  `bun:"game_remote_id,notnull"`
	Platform     string `bun:"platform,notnull"`
	Region       string `bun:"region,notnull"`
	StoreGameID  string `bun:"store_game_id,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
