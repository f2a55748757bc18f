package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/curiodex/curio/curio"
	"github.com/curiodex/curio/curio/database"
	"github.com/curiodex/curio/curio/database/repositories"
	"github.com/curiodex/curio/curio/logger"
	"github.com/curiodex/curio/curio/metadata"
	"github.com/curiodex/curio/curio/pricing"
	"github.com/curiodex/curio/curio/services"
	"github.com/curiodex/curio/curio/stores"
	"github.com/curiodex/curio/curio/stores/eshop"
	"github.com/curiodex/curio/web"
	"github.com/curiodex/curio/web/handlers"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler("Curio")))

	slog.Info("Starting Curio",
		slog.String("version", version),
		slog.String("commit", commit))

	configPath := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := curio.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Configuration loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.Info("Initializing database connection...")
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

	users := repositories.NewUserRepository(db.BunDB())
	games := repositories.NewGameRepository(db.BunDB())
	tracked := repositories.NewTrackedGameRepository(db.BunDB())
	storeIDs := repositories.NewStoreMetadataRepository(db.BunDB())
	prices := repositories.NewPriceRepository(db.BunDB())

	var covers metadata.CoverMirror
	if cfg.Spaces.Enabled {
		covers = services.NewCoverService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
		)
	}

	catalog := metadata.NewService(
		metadata.NewClient(cfg.Metadata.BaseURL, cfg.Metadata.APIKey),
		games,
		covers,
		cfg.Metadata.TTL(),
	)

	platform, err := stores.ParsePlatform(cfg.Pricing.Platform)
	if err != nil {
		slog.Error("Invalid pricing platform", slog.Any("error", err))
		os.Exit(1)
	}

	eshopClient := eshop.NewClient(cfg.Eshop.SearchURL, cfg.Eshop.PriceURL)
	mall := stores.NewMall(
		stores.NewPlatformStore(stores.PlatformSwitch,
			[]stores.Region{stores.RegionGB, stores.RegionAU, stores.RegionNZ},
			eshopClient),
	)
	if !mall.Has(platform) {
		slog.Error("No store registered for configured platform",
			slog.String("platform", string(platform)))
		os.Exit(1)
	}

	reconciler := pricing.NewReconciler(mall, tracked, catalog, storeIDs, prices, cfg.Pricing.Throttle())
	scheduler := pricing.NewScheduler(reconciler, platform, cfg.Pricing.Interval(), cfg.Pricing.RunOnStart)
	scheduler.Start(ctx)
	slog.Info("Price reconciliation scheduled",
		slog.String("type", "job"),
		slog.String("platform", string(platform)),
		slog.Duration("interval", cfg.Pricing.Interval()),
		slog.Bool("run_on_start", cfg.Pricing.RunOnStart))

	webApp := &handlers.WebApp{
		Users:     users,
		Games:     games,
		Tracked:   tracked,
		Prices:    prices,
		StoreIDs:  storeIDs,
		Metadata:  catalog,
		Search:    services.NewGameSearchService(games),
		Scheduler: scheduler,
		Version:   version,
	}
	server := web.NewServer(webApp, cfg.Web.Host, cfg.Web.Port)

	go func() {
		if err := server.Listen(); err != nil {
			slog.Error("API server stopped", slog.Any("error", err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	slog.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.Any("error", err))
	}

	slog.Info("Shutdown complete")
}
