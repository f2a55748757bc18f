package repositories

import (
	"context"
	"time"

	"github.com/curiodex/curio/curio/database/models"
	"github.com/uptrace/bun"
)

type TrackedGameRepository interface {
	Add(ctx context.Context, tracked *models.TrackedGame) error
	UpdateStatus(ctx context.Context, userID, gameRemoteID int64, platform, status string) error
	Remove(ctx context.Context, userID, gameRemoteID int64, platform string) error
	GetByUser(ctx context.Context, userID int64) ([]*models.TrackedGame, error)
	GetByUserAndStatus(ctx context.Context, userID int64, status string) ([]*models.TrackedGame, error)
	// WishlistedGameIDs returns the distinct remote ids of games any user has
	// wishlisted for the platform, ordered by id so sweeps are deterministic.
	WishlistedGameIDs(ctx context.Context, platform string) ([]int64, error)
	Exists(ctx context.Context, userID, gameRemoteID int64, platform string) (bool, error)
}

type trackedGameRepository struct {
	db *bun.DB
}

func NewTrackedGameRepository(db *bun.DB) TrackedGameRepository {
	return &trackedGameRepository{db: db}
}

func (r *trackedGameRepository) Add(ctx context.Context, tracked *models.TrackedGame) error {
	now := time.Now()
	tracked.CreatedAt = now
	tracked.UpdatedAt = now
	_, err := r.db.NewInsert().Model(tracked).Exec(ctx)
	return err
}

func (r *trackedGameRepository) UpdateStatus(ctx context.Context, userID, gameRemoteID int64, platform, status string) error {
	_, err := r.db.NewUpdate().
		Model((*models.TrackedGame)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ? AND game_remote_id = ? AND platform = ?", userID, gameRemoteID, platform).
		Exec(ctx)
	return err
}

func (r *trackedGameRepository) Remove(ctx context.Context, userID, gameRemoteID int64, platform string) error {
	_, err := r.db.NewDelete().
		Model((*models.TrackedGame)(nil)).
		Where("user_id = ? AND game_remote_id = ? AND platform = ?", userID, gameRemoteID, platform).
		Exec(ctx)
	return err
}

func (r *trackedGameRepository) GetByUser(ctx context.Context, userID int64) ([]*models.TrackedGame, error) {
	var tracked []*models.TrackedGame
	err := r.db.NewSelect().
		Model(&tracked).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	return tracked, err
}

func (r *trackedGameRepository) GetByUserAndStatus(ctx context.Context, userID int64, status string) ([]*models.TrackedGame, error) {
	var tracked []*models.TrackedGame
	err := r.db.NewSelect().
		Model(&tracked).
		Where("user_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Scan(ctx)
	return tracked, err
}

func (r *trackedGameRepository) WishlistedGameIDs(ctx context.Context, platform string) ([]int64, error) {
	var ids []int64
	err := r.db.NewSelect().
		Model((*models.TrackedGame)(nil)).
		ColumnExpr("DISTINCT game_remote_id").
		Where("status = ? AND platform = ?", models.StatusWishlist, platform).
		Order("game_remote_id ASC").
		Scan(ctx, &ids)
	return ids, err
}

func (r *trackedGameRepository) Exists(ctx context.Context, userID, gameRemoteID int64, platform string) (bool, error) {
	return r.db.NewSelect().
		Model((*models.TrackedGame)(nil)).
		Where("user_id = ? AND game_remote_id = ? AND platform = ?", userID, gameRemoteID, platform).
		Exists(ctx)
}
