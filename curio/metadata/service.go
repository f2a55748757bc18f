package metadata

import (
	"context"
	"log/slog"
	"time"

	"github.com/curiodex/curio/curio/database/models"
	lru "github.com/hashicorp/golang-lru"
)

const cacheSize = 512

// GameStore is the slice of persistence the service needs.
type GameStore interface {
	GetByRemoteID(ctx context.Context, remoteID int64) (*models.Game, error)
	Upsert(ctx context.Context, game *models.Game) error
}

// CoverMirror copies cover art into our own storage. Mirroring is best
// effort and never blocks metadata caching.
type CoverMirror interface {
	MirrorCover(ctx context.Context, remoteID int64, coverURL string) error
}

type Service struct {
	client *Client
	games  GameStore
	covers CoverMirror
	ttl    time.Duration
	cache  *lru.Cache
}

func NewService(client *Client, games GameStore, covers CoverMirror, ttl time.Duration) *Service {
	cache, _ := lru.New(cacheSize)
	return &Service{
		client: client,
		games:  games,
		covers: covers,
		ttl:    ttl,
		cache:  cache,
	}
}

// EnsureGame returns the cached catalog entry for a remote id, fetching and
// persisting it when missing or stale. A nil result without error means the
// catalog does not know the id; negative results are not cached so the next
// call retries.
func (s *Service) EnsureGame(ctx context.Context, remoteID int64) (*models.Game, error) {
	if cached, ok := s.cache.Get(remoteID); ok {
		game := cached.(*models.Game)
		if time.Since(game.FetchedAt) < s.ttl {
			return game, nil
		}
		s.cache.Remove(remoteID)
	}

	game, err := s.games.GetByRemoteID(ctx, remoteID)
	if err != nil {
		return nil, err
	}
	if game != nil && time.Since(game.FetchedAt) < s.ttl {
		s.cache.Add(remoteID, game)
		return game, nil
	}

	remote, err := s.client.GameByID(ctx, remoteID)
	if err != nil {
		return nil, err
	}
	if remote == nil {
		// Keep serving a stale row over nothing when the catalog dropped it.
		if game != nil {
			return game, nil
		}
		return nil, nil
	}

	game = &models.Game{
		RemoteID:  remote.ID,
		Title:     remote.Name,
		CoverURL:  remote.BackgroundImage,
		Summary:   remote.Description,
		Rating:    remote.Rating,
		FetchedAt: time.Now(),
	}
	if err := s.games.Upsert(ctx, game); err != nil {
		return nil, err
	}

	if s.covers != nil && game.CoverURL != "" {
		if err := s.covers.MirrorCover(ctx, game.RemoteID, game.CoverURL); err != nil {
			slog.Warn("Failed to mirror cover art",
				slog.Int64("remote_id", game.RemoteID),
				slog.Any("error", err))
		}
	}

	s.cache.Add(remoteID, game)
	return game, nil
}
