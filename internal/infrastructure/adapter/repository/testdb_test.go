package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/time"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	mgr := migration.NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	require.NoError(t, mgr.MigrateAll(context.Background()))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, balance entity.Money) {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{ID: id, Email: id + "@example.com", Name: id, CreatedAt: testNow}
	require.NoError(t, NewUserRepository(db, logger.NewNoopLogger()).Create(ctx, user))

	wallet, err := entity.RestoreWallet("wal_"+id, id, balance, testNow)
	require.NoError(t, err)
	require.NoError(t, NewWalletRepository(db, logger.NewNoopLogger()).Create(ctx, wallet))
}

func seedPoll(t *testing.T, db *gorm.DB, id string, options ...string) *entity.Poll {
	t.Helper()

	poll := &entity.Poll{
		ID:           id,
		Title:        "Poll " + id,
		PricePerVote: entity.Rupees(10),
		Status:       entity.PollActive,
		CreatedAt:    testNow,
	}
	for i, text := range options {
		poll.Options = append(poll.Options, entity.Option{
			ID:       id + "_opt" + string(rune('a'+i)),
			PollID:   id,
			Position: i,
			Text:     text,
		})
	}
	require.NoError(t, NewPollRepository(db, logger.NewNoopLogger()).Create(context.Background(), poll))
	return poll
}
