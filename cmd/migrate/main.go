package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/curiodex/curio/curio"
	"github.com/curiodex/curio/curio/database"
	"github.com/curiodex/curio/curio/logger"
	"github.com/curiodex/curio/curio/migration"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler("Curio-Migrate")))

	configPath := flag.String("config", "config.toml", "path to config")
	mongoURI := flag.String("mongo-uri", "mongodb://localhost:27017", "legacy mongo connection uri")
	mongoDB := flag.String("mongo-db", "gametracker", "legacy mongo database name")
	flag.Parse()

	cfg, err := curio.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.Any("error", err))
		os.Exit(1)
	}

	client, legacyDB, err := migration.Connect(ctx, *mongoURI, *mongoDB)
	if err != nil {
		slog.Error("Failed to connect to legacy database", slog.Any("error", err))
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	migrator := migration.NewMigrator(db.BunDB(), legacyDB)
	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migration completed successfully")
}
