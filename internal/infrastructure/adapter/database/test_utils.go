package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/time"
)

// TestDBManager wraps a migrated in-memory SQLite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database and migrates it.
// The connection is closed when the test ends.
func NewTestDBManager(t *testing.T) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	config := &Config{
		Driver:        DriverSQLite,
		Path:          ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
		LockTimeout:   time.Second,
		MaxTxRetries:  3,
	}

	manager := NewManager(config, log, timeProvider)
	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})
	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}

// CreateTestUser inserts a user with a wallet. A positive balance is backed by
// a successful wallet ledger entry so reconciliation holds.
func (m *TestDBManager) CreateTestUser(t *testing.T, id string, balance int64) {
	t.Helper()

	db := m.Manager.DB()
	now := m.TimeProvider.Now()

	if err := db.Create(&model.User{
		ID:        id,
		Email:     id + "@example.com",
		Name:      id,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	if err := db.Omit("User").Create(&model.Wallet{
		ID:        "wal_" + id,
		UserID:    id,
		Balance:   balance,
		UpdatedAt: now,
	}).Error; err != nil {
		t.Fatalf("Failed to create test wallet: %v", err)
	}

	if balance > 0 {
		if err := db.Omit("User").Create(&model.Transaction{
			ID:          "txn_seed_" + id,
			UserID:      id,
			Type:        "win",
			Amount:      balance,
			Status:      "success",
			Funding:     "wallet",
			PollID:      "poll_seed_" + id,
			ReferenceID: "seed",
			CreatedAt:   now,
			ProcessedAt: &now,
		}).Error; err != nil {
			t.Fatalf("Failed to create seed ledger entry: %v", err)
		}
	}
}
