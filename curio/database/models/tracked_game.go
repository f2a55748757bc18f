package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	StatusOwned    = "owned"
	StatusBacklog  = "backlog"
	StatusWishlist = "wishlist"
)

type TrackedGame struct {
	bun.BaseModel `bun:"table:tracked_games,alias:tg"`

	ID           int64  `bun:"id,pk,autoincrement"`
	UserID       int64  `bun:"user_id,notnull"`
	GameRemoteID int64  `bun:"game_remote_id,notnull"`
	Platform     string `bun:"platform,notnull"`
	Status       string `bun:"status,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
