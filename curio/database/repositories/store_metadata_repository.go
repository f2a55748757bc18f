package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/uptrace/bun"
)

type StoreMetadataRepository interface {
	// Get returns nil without error when no row exists for the key; a missing
	// row only means the id has not been resolved yet.
	Get(ctx context.Context, gameRemoteID int64, platform, region string) (*models.GameStoreMetadata, error)
	Create(ctx context.Context, meta *models.GameStoreMetadata) error
	// DeleteByGame clears all cached store ids for a game, the manual escape
	// hatch for delisted or renamed storefront entries.
	DeleteByGame(ctx context.Context, gameRemoteID int64) (int64, error)
}

type storeMetadataRepository struct {
	db *bun.DB
}

func NewStoreMetadataRepository(db *bun.DB) StoreMetadataRepository {
	return &storeMetadataRepository{db: db}
}

func (r *storeMetadataRepository) Get(ctx context.Context, gameRemoteID int64, platform, region string) (*models.GameStoreMetadata, error) {
	meta := new(models.GameStoreMetadata)
	err := r.db.NewSelect().
		Model(meta).
		Where("game_remote_id = ? AND platform = ? AND region = ?", gameRemoteID, platform, region).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return meta, err
}

func (r *storeMetadataRepository) Create(ctx context.Context, meta *models.GameStoreMetadata) error {
	meta.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(meta).
		On("CONFLICT (game_remote_id, platform, region) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *storeMetadataRepository) DeleteByGame(ctx context.Context, gameRemoteID int64) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*models.GameStoreMetadata)(nil)).
		Where("game_remote_id = ?", gameRemoteID).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
