package models

import (
	"time"

	"github.com/uptrace/bun"
)

// GamePriceHistory is append-only; the current price for a (game, platform,
// region) is the most recent row by FetchedAt.
type GamePriceHistory struct {
	bun.BaseModel `bun:"table:game_price_history,alias:gph"`

	ID           int64  `bun:"id,pk,autoincrement"`
	GameRemoteID int64  `bun:"game_remote_id,notnull"`
	Platform     string `bun:"platform,notnull"`
	Region       string `bun:"region,notnull"`
	StoreGameID  string `bun:"store_game_id,notnull"`

	URL        string     `bun:"url"`
	Currency   string     `bun:"currency,notnull"`
	Price      float64    `bun:"price,notnull"`
	IsOnSale   bool       `bun:"is_on_sale,notnull,default:false"`
	SaleEndsAt *time.Time `bun:"sale_ends_at,nullzero"`

	FetchedAt time.Time `bun:"fetched_at,notnull"`
}
