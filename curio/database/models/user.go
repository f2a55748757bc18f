package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int64  `bun:"id,pk,autoincrement"`
	Email    string `bun:"email,notnull,unique"`
	Username string `bun:"username,notnull"`
	APIToken string `bun:"api_token,notnull,unique"`
	IsAdmin  bool   `bun:"is_admin,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
