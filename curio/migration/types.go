package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyUser is a user document from the Mongo era of the tracker. Tracked
// games were embedded in the user document back then.
type LegacyUser struct {
	ID       primitive.ObjectID `bson:"_id"`
	Email    string             `bson:"email"`
	Username string             `bson:"name"`
	Admin    bool               `bson:"admin"`
	Joined   time.Time          `bson:"joined"`
	Games    []LegacyEntry      `bson:"games"`
}

// LegacyEntry is one embedded tracked game.
type LegacyEntry struct {
	GameID   int64     `bson:"game_id"`
	Platform string    `bson:"platform"`
	Status   string    `bson:"status"`
	Added    time.Time `bson:"added"`
}

// TableStats tracks per-table migration counts.
type TableStats struct {
	Read     int
	Inserted int
	Skipped  int
}

// MigrationStats aggregates everything one run touched.
type MigrationStats struct {
	StartTime time.Time
	Users     TableStats
	Tracked   TableStats
}
