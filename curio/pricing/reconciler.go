// Package pricing runs the periodic price reconciliation sweep: for every
// wishlisted game on a platform, resolve the storefront id (cache first),
// fetch the current price per supported region, and persist as it goes.
package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/curiodex/curio/curio/stores"
)

const defaultThrottle = 1500 * time.Millisecond

// WishlistSource enumerates the games to sweep.
type WishlistSource interface {
	WishlistedGameIDs(ctx context.Context, platform string) ([]int64, error)
}

// MetadataProvider supplies the human-readable title resolution needs.
// A nil game without error means the catalog does not know the id.
type MetadataProvider interface {
	EnsureGame(ctx context.Context, remoteID int64) (*models.Game, error)
}

// StoreMetadataStore reads and writes the storefront id cache.
type StoreMetadataStore interface {
	Get(ctx context.Context, gameRemoteID int64, platform, region string) (*models.GameStoreMetadata, error)
	Create(ctx context.Context, meta *models.GameStoreMetadata) error
}

// PriceSink appends price snapshots.
type PriceSink interface {
	Append(ctx context.Context, record *models.GamePriceHistory) error
}

// RunStats summarizes one sweep for the completion log line.
type RunStats struct {
	StartTime     time.Time
	Games         int
	Pairs         int
	CacheHits     int
	Resolved      int
	NoMetadata    int
	Unresolved    int
	NoPrice       int
	PricesStored  int
}

type Reconciler struct {
	mall     *stores.Mall
	wishlist WishlistSource
	metadata MetadataProvider
	ids      StoreMetadataStore
	prices   PriceSink

	throttle time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewReconciler(mall *stores.Mall, wishlist WishlistSource, metadata MetadataProvider, ids StoreMetadataStore, prices PriceSink, throttle time.Duration) *Reconciler {
	if throttle <= 0 {
		throttle = defaultThrottle
	}
	return &Reconciler{
		mall:     mall,
		wishlist: wishlist,
		metadata: metadata,
		ids:      ids,
		prices:   prices,
		throttle: throttle,
		sleep:    sleepCtx,
	}
}

// Send implements Dispatcher.
func (r *Reconciler) Send(ctx context.Context, cmd Command) error {
	return r.Run(ctx, cmd.Platform)
}

// Run sweeps every wishlisted game of the platform across its supported
// regions, strictly sequentially. Every persisted row is committed on its
// own, so an aborted run keeps all completed work and the next run resumes
// from the wishlist with the id cache already warm.
//
// Soft misses (unknown title, no search hit, no price entry) skip the current
// game+region pair; transport and persistence errors abort the remainder of
// the run.
func (r *Reconciler) Run(ctx context.Context, platform stores.Platform) error {
	store := r.mall.Store(platform)
	regions := store.Regions()

	ids, err := r.wishlist.WishlistedGameIDs(ctx, string(platform))
	if err != nil {
		return fmt.Errorf("failed to load wishlist for %s: %w", platform, err)
	}

	stats := RunStats{StartTime: time.Now(), Games: len(ids)}

	slog.Info("Price reconciliation started",
		slog.String("type", "job"),
		slog.String("platform", string(platform)),
		slog.Int("games", len(ids)),
		slog.Int("regions", len(regions)))

	for _, gameID := range ids {
		for _, region := range regions {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := r.reconcilePair(ctx, store, platform, gameID, region, &stats); err != nil {
				return fmt.Errorf("reconciliation aborted at game %d region %s: %w", gameID, region, err)
			}
			stats.Pairs++

			// The throttle is per iteration, not per successful call: it
			// serializes outbound traffic to the storefront regardless of
			// how the pair turned out.
			if err := r.sleep(ctx, r.throttle); err != nil {
				return err
			}
		}
	}

	slog.Info("Price reconciliation completed",
		slog.String("type", "job"),
		slog.String("platform", string(platform)),
		slog.Int("pairs", stats.Pairs),
		slog.Int("cache_hits", stats.CacheHits),
		slog.Int("resolved", stats.Resolved),
		slog.Int("no_metadata", stats.NoMetadata),
		slog.Int("unresolved", stats.Unresolved),
		slog.Int("no_price", stats.NoPrice),
		slog.Int("prices_stored", stats.PricesStored),
		slog.Duration("took", time.Since(stats.StartTime)))

	return nil
}

func (r *Reconciler) reconcilePair(ctx context.Context, store *stores.PlatformStore, platform stores.Platform, gameID int64, region stores.Region, stats *RunStats) error {
	cached, err := r.ids.Get(ctx, gameID, string(platform), string(region))
	if err != nil {
		return err
	}

	var storeID string
	if cached != nil {
		// A cached id is trusted without re-validation for the whole run.
		storeID = cached.StoreGameID
		stats.CacheHits++
	} else {
		game, err := r.metadata.EnsureGame(ctx, gameID)
		if err != nil {
			return err
		}
		if game == nil {
			stats.NoMetadata++
			slog.Debug("Skipping pair, no catalog metadata",
				slog.String("type", "job"),
				slog.Int64("game", gameID),
				slog.String("region", string(region)))
			return nil
		}

		storeID, err = store.ResolveStoreID(ctx, region, game.Title)
		if err != nil {
			return err
		}
		if storeID == "" {
			// No cache row written; the next run retries resolution.
			stats.Unresolved++
			return nil
		}

		if err := r.ids.Create(ctx, &models.GameStoreMetadata{
			GameRemoteID: gameID,
			Platform:     string(platform),
			Region:       string(region),
			StoreGameID:  storeID,
		}); err != nil {
			return err
		}
		stats.Resolved++
	}

	snapshot, err := store.FetchPrice(ctx, region, storeID)
	if err != nil {
		return err
	}
	if snapshot == nil {
		stats.NoPrice++
		return nil
	}

	if err := r.prices.Append(ctx, &models.GamePriceHistory{
		GameRemoteID: gameID,
		Platform:     string(platform),
		Region:       string(region),
		StoreGameID:  storeID,
		URL:          snapshot.URL,
		Currency:     snapshot.Currency,
		Price:        snapshot.Price,
		IsOnSale:     snapshot.IsOnSale,
		SaleEndsAt:   snapshot.SaleEndsAt,
		FetchedAt:    time.Now(),
	}); err != nil {
		return err
	}
	stats.PricesStored++

	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
