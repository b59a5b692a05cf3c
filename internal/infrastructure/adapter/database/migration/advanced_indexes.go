package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates PostgreSQL-only indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	indexes := []struct {
		name string
		stmt string
	}{
		{
			name: "idx_transactions_created_at_brin",
			stmt: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
				ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_withdrawals_pending",
			stmt: `CREATE INDEX IF NOT EXISTS idx_withdrawals_pending
				ON withdrawals (created_at) WHERE status = 'pending'`,
		},
		{
			name: "idx_payment_intents_pending",
			stmt: `CREATE INDEX IF NOT EXISTS idx_payment_intents_pending
				ON payment_intents (created_at) WHERE status = 'pending'`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.WithContext(ctx).Exec(idx.stmt).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created", map[string]any{"count": len(indexes)})
	return nil
}

// ApplyPerformanceTweaks tunes the append-heavy tables. Failures are logged only.
func (m *AdvancedIndexManager) ApplyPerformanceTweaks(ctx context.Context) {
	tweaks := []string{
		`ALTER TABLE transactions SET (fillfactor = 90)`,
		`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`,
		`ALTER TABLE votes ALTER COLUMN poll_id SET STATISTICS 500`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
