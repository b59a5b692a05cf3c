package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/database/migration"
)

// MonitorInterval is how often pool statistics are sampled
const MonitorInterval = 30 * time.Second

// Manager owns the database connection and hands out units of work
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(m.config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Connect opens the database, retrying the initial connection
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"name":   m.config.Database,
		"path":   m.config.Path,
	})

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var gormDB *gorm.DB
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-m.timeProvider.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = gorm.Open(dialector, &gorm.Config{
			Logger:         NewGormLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc:        m.timeProvider.Now,
			PrepareStmt:    m.config.Driver == DriverPostgres,
			TranslateError: true,
		})
		if err == nil {
			err = m.ping(ctx, gormDB)
		}
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	if err := m.configurePool(gormDB); err != nil {
		return nil, err
	}
	if m.config.Driver == DriverSQLite {
		if err := m.configureSQLite(ctx, gormDB); err != nil {
			return nil, err
		}
	}

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.connectionMonitor = NewConnectionPoolMonitor(m, m.logger)
	if err := m.connectionMonitor.Start(MonitorInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
	})
	return m.db, nil
}

// configurePool applies pool limits. SQLite gets a single connection that is
// never recycled, so an in-memory database lives as long as the process.
func (m *Manager) configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
		return nil
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	return nil
}

func (m *Manager) configureSQLite(ctx context.Context, db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if err := db.WithContext(ctx).Exec(p).Error; err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}

func (m *Manager) ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Ping checks that the database answers
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not connected")
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return m.ping(ctx, m.db)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return fmt.Errorf("database not connected")
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// Close stops monitoring and closes the connection pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.config.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a UnitOfWork bound to this connection
func (m *Manager) CreateUnitOfWork() *UnitOfWork {
	retry := DefaultRetryConfig()
	if m.config.MaxTxRetries > 0 {
		retry.MaxRetries = m.config.MaxTxRetries
	}
	return NewUnitOfWork(m.db, m.logger, m.timeProvider, retry, m.config.LockTimeout)
}

// PoolStats returns the latest connection pool sample
func (m *Manager) PoolStats() map[string]any {
	if m.connectionMonitor == nil {
		return nil
	}
	return m.connectionMonitor.Snapshot()
}
