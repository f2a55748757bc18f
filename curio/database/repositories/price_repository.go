package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/uptrace/bun"
)

type PriceRepository interface {
	// Append inserts one snapshot row; price history is never updated in place.
	Append(ctx context.Context, record *models.GamePriceHistory) error
	HistoryByGame(ctx context.Context, gameRemoteID int64, platform string) ([]*models.GamePriceHistory, error)
	LatestByRegion(ctx context.Context, gameRemoteID int64, platform, region string) (*models.GamePriceHistory, error)
}

type priceRepository struct {
	db *bun.DB
}

func NewPriceRepository(db *bun.DB) PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) Append(ctx context.Context, record *models.GamePriceHistory) error {
	_, err := r.db.NewInsert().Model(record).Exec(ctx)
	return err
}

func (r *priceRepository) HistoryByGame(ctx context.Context, gameRemoteID int64, platform string) ([]*models.GamePriceHistory, error) {
	var history []*models.GamePriceHistory
	err := r.db.NewSelect().
		Model(&history).
		Where("game_remote_id = ? AND platform = ?", gameRemoteID, platform).
		Order("fetched_at DESC").
		Scan(ctx)
	return history, err
}

func (r *priceRepository) LatestByRegion(ctx context.Context, gameRemoteID int64, platform, region string) (*models.GamePriceHistory, error) {
	record := new(models.GamePriceHistory)
	err := r.db.NewSelect().
		Model(record).
		Where("game_remote_id = ? AND platform = ? AND region = ?", gameRemoteID, platform, region).
		Order("fetched_at DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}
