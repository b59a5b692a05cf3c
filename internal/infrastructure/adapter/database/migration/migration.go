package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/model"
)

// CurrentSchemaVersion is the version the last step brings the schema to
const CurrentSchemaVersion = "1.1.0"

type step struct {
	version     string
	description string
	apply       func(db *gorm.DB) error
}

// MigrationManager applies schema steps in order and records each one
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", description: "base schema", apply: m.createBaseSchema},
		{version: "1.1.0", description: "ledger uniqueness and lookup indexes", apply: m.createIndexes},
	}
	return m
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"driver":         m.db.Dialector.Name(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("failed to create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	for _, s := range m.steps {
		if currentVersion != "" && s.version <= currentVersion {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version":     s.version,
			"description": s.description,
		})
		if err := s.apply(m.db.WithContext(ctx)); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s failed: %w", s.version, err)
		}
		if err := m.setVersion(ctx, s.version, s.description); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", s.version, err)
		}
	}

	if m.db.Dialector.Name() == "postgres" {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
			return err
		}
		m.advancedIndexMgr.ApplyPerformanceTweaks(ctx)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the latest applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("version desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version, description string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:     version,
		Description: description,
		Driver:      m.db.Dialector.Name(),
		AppliedAt:   m.timeProvider.Now(),
	}).Error
}

func (m *MigrationManager) createBaseSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Wallet{},
		&model.Poll{},
		&model.PollOption{},
		&model.Transaction{},
		&model.Vote{},
		&model.PaymentIntent{},
		&model.Withdrawal{},
		&model.Settlement{},
	)
}

// createIndexes adds indexes both drivers understand. The partial unique index
// allows at most one win credit per user and poll.
func (m *MigrationManager) createIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_win_once
			ON transactions (poll_id, user_id) WHERE type = 'win'`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_ledger
			ON transactions (user_id, funding, status)`,
		`CREATE INDEX IF NOT EXISTS idx_votes_poll_option
			ON votes (poll_id, option_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_poll_options_position
			ON poll_options (poll_id, position)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
