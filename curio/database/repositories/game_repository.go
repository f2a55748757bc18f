package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/uptrace/bun"
)

type GameRepository interface {
	GetByRemoteID(ctx context.Context, remoteID int64) (*models.Game, error)
	Upsert(ctx context.Context, game *models.Game) error
	GetAll(ctx context.Context) ([]*models.Game, error)
}

type gameRepository struct {
	db *bun.DB
}

func NewGameRepository(db *bun.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) GetByRemoteID(ctx context.Context, remoteID int64) (*models.Game, error) {
	game := new(models.Game)
	err := r.db.NewSelect().
		Model(game).
		Where("remote_id = ?", remoteID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return game, err
}

func (r *gameRepository) Upsert(ctx context.Context, game *models.Game) error {
	now := time.Now()
	game.UpdatedAt = now
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	if game.FetchedAt.IsZero() {
		game.FetchedAt = now
	}
	_, err := r.db.NewInsert().
		Model(game).
		On("CONFLICT (remote_id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("cover_url = EXCLUDED.cover_url").
		Set("summary = EXCLUDED.summary").
		Set("rating = EXCLUDED.rating").
		Set("fetched_at = EXCLUDED.fetched_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *gameRepository) GetAll(ctx context.Context) ([]*models.Game, error) {
	var games []*models.Game
	err := r.db.NewSelect().
		Model(&games).
		Order("title ASC").
		Scan(ctx)
	return games, err
}
