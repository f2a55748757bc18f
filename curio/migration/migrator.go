// Package migration imports data from the Mongo-era tracker into Postgres.
// The import is idempotent: rows that already exist are left alone, so a
// failed run can simply be restarted.
package migration

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type Migrator struct {
	pgDB    *bun.DB
	mongoDB *mongo.Database

	stats MigrationStats
}

func NewMigrator(pgDB *bun.DB, mongoDB *mongo.Database) *Migrator {
	return &Migrator{
		pgDB:    pgDB,
		mongoDB: mongoDB,
		stats:   MigrationStats{StartTime: time.Now()},
	}
}

// Connect opens the legacy Mongo database.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, client.Database(database), nil
}

// MigrateAll imports users and their embedded tracked games.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	cursor, err := m.mongoDB.Collection(usersCollection).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to read legacy users: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var legacy LegacyUser
		if err := cursor.Decode(&legacy); err != nil {
			return fmt.Errorf("failed to decode legacy user: %w", err)
		}
		m.stats.Users.Read++

		if err := m.migrateUser(ctx, legacy); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("legacy user cursor failed: %w", err)
	}

	slog.Info("Legacy migration finished",
		slog.String("type", "db"),
		slog.Int("users_read", m.stats.Users.Read),
		slog.Int("users_inserted", m.stats.Users.Inserted),
		slog.Int("users_skipped", m.stats.Users.Skipped),
		slog.Int("tracked_read", m.stats.Tracked.Read),
		slog.Int("tracked_inserted", m.stats.Tracked.Inserted),
		slog.Int("tracked_skipped", m.stats.Tracked.Skipped),
		slog.Duration("took", time.Since(m.stats.StartTime)))
	return nil
}

// Stats returns the counters of the current run.
func (m *Migrator) Stats() MigrationStats {
	return m.stats
}

func (m *Migrator) migrateUser(ctx context.Context, legacy LegacyUser) error {
	email := strings.TrimSpace(strings.ToLower(legacy.Email))
	if email == "" {
		m.stats.Users.Skipped++
		slog.Warn("Skipping legacy user without email",
			slog.String("type", "db"),
			slog.String("legacy_id", legacy.ID.Hex()))
		return nil
	}

	token, err := newToken()
	if err != nil {
		return err
	}

	user := &models.User{
		Email:     email,
		Username:  legacy.Username,
		APIToken:  token,
		IsAdmin:   legacy.Admin,
		CreatedAt: legacy.Joined,
	}
	res, err := m.pgDB.NewInsert().
		Model(user).
		On("CONFLICT (email) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", email, err)
	}
	if inserted, _ := res.RowsAffected(); inserted > 0 {
		m.stats.Users.Inserted++
	} else {
		m.stats.Users.Skipped++
	}

	// Re-read to get the id regardless of whether this run inserted the row.
	var existing models.User
	if err := m.pgDB.NewSelect().
		Model(&existing).
		Where("email = ?", email).
		Scan(ctx); err != nil {
		return fmt.Errorf("failed to load user %s after insert: %w", email, err)
	}

	return m.migrateTrackedGames(ctx, existing.ID, legacy.Games)
}

func (m *Migrator) migrateTrackedGames(ctx context.Context, userID int64, entries []LegacyEntry) error {
	for _, entry := range entries {
		m.stats.Tracked.Read++

		status, ok := convertStatus(entry.Status)
		if !ok {
			m.stats.Tracked.Skipped++
			slog.Warn("Skipping tracked game with unknown legacy status",
				slog.String("type", "db"),
				slog.Int64("user_id", userID),
				slog.Int64("game_id", entry.GameID),
				slog.String("status", entry.Status))
			continue
		}

		tracked := &models.TrackedGame{
			UserID:       userID,
			GameRemoteID: entry.GameID,
			Platform:     convertPlatform(entry.Platform),
			Status:       status,
			CreatedAt:    entry.Added,
		}
		res, err := m.pgDB.NewInsert().
			Model(tracked).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert tracked game %d for user %d: %w", entry.GameID, userID, err)
		}
		if inserted, _ := res.RowsAffected(); inserted > 0 {
			m.stats.Tracked.Inserted++
		} else {
			m.stats.Tracked.Skipped++
		}
	}
	return nil
}

// convertStatus maps the legacy status vocabulary onto the current one.
func convertStatus(legacy string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(legacy)) {
	case "own", "owned":
		return models.StatusOwned, true
	case "backlog":
		return models.StatusBacklog, true
	case "wish", "wishlist":
		return models.StatusWishlist, true
	}
	return "", false
}

// convertPlatform normalizes the legacy platform labels.
func convertPlatform(legacy string) string {
	switch strings.ToLower(strings.TrimSpace(legacy)) {
	case "nintendo switch", "nx", "switch":
		return "switch"
	}
	return strings.ToLower(strings.TrimSpace(legacy))
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
