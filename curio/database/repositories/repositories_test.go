package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })
	return bun.NewDB(sqldb, pgdialect.New()), mock
}

func TestUserRepository_GetByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "username", "api_token", "is_admin", "created_at", "updated_at"}).
			AddRow(int64(1), "a@b.com", "alice", "tok123", false, now, now))

	user, err := repo.GetByToken(context.Background(), "tok123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByToken_UnknownTokenIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "username", "api_token", "is_admin", "created_at", "updated_at"}))

	user, err := repo.GetByToken(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGameRepository_GetByRemoteID_MissingRowIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGameRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "games"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"remote_id", "title", "cover_url", "summary", "rating", "fetched_at", "created_at", "updated_at"}))

	game, err := repo.GetByRemoteID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, game)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreMetadataRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreMetadataRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "game_store_metadata"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "game_remote_id", "platform", "region", "store_game_id", "created_at"}).
			AddRow(int64(1), int64(7), "switch", "GB", "70010000001", time.Now()))

	meta, err := repo.Get(context.Background(), 7, "switch", "GB")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "70010000001", meta.StoreGameID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreMetadataRepository_Get_UnresolvedIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreMetadataRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "game_store_metadata"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "game_remote_id", "platform", "region", "store_game_id", "created_at"}))

	meta, err := repo.Get(context.Background(), 7, "switch", "NZ")
	require.NoError(t, err)
	assert.Nil(t, meta)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreMetadataRepository_DeleteByGame(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStoreMetadataRepository(db)

	mock.ExpectExec(`DELETE FROM "game_store_metadata"`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteByGame(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackedGameRepository_WishlistedGameIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrackedGameRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT game_remote_id FROM "tracked_games"`).
		WillReturnRows(sqlmock.NewRows([]string{"game_remote_id"}).
			AddRow(int64(3)).
			AddRow(int64(7)).
			AddRow(int64(42)))

	ids, err := repo.WishlistedGameIDs(context.Background(), "switch")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 42}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackedGameRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrackedGameRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 1, 7, "switch")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceRepository_LatestByRegion_NoHistoryIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPriceRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "game_price_history"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "game_remote_id", "platform", "region", "store_game_id", "url", "currency", "price", "is_on_sale", "sale_ends_at", "fetched_at"}))

	latest, err := repo.LatestByRegion(context.Background(), 7, "switch", "GB")
	require.NoError(t, err)
	assert.Nil(t, latest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceRepository_LatestByRegion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPriceRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "game_price_history"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "game_remote_id", "platform", "region", "store_game_id", "url", "currency", "price", "is_on_sale", "sale_ends_at", "fetched_at"}).
			AddRow(int64(1), int64(7), "switch", "GB", "70010000001",
				"https://ec.nintendo.com/GB/en/titles/70010000001", "GBP", 19.99, true, nil, time.Now()))

	latest, err := repo.LatestByRegion(context.Background(), 7, "switch", "GB")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "GBP", latest.Currency)
	assert.InDelta(t, 19.99, latest.Price, 0.001)
	assert.True(t, latest.IsOnSale)
	assert.NoError(t, mock.ExpectationsWereMet())
}
