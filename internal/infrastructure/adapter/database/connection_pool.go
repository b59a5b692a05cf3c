package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// poolBusyRatio is the in-use share above which a sample is reported
const poolBusyRatio = 0.8

// ConnectionPoolMonitor samples database/sql pool statistics. It warns when the
// pool runs hot and when callers had to wait for a connection since the last sample,
// which under load usually means units of work are queueing behind row locks.
type ConnectionPoolMonitor struct {
	db     *Manager
	logger coreport.Logger

	mu   sync.RWMutex
	last sql.DBStats
	seen bool

	stopOnce sync.Once
	stop     chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:     db,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start samples once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.sample(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.sample(); err != nil {
					m.logger.Error("Failed to sample connection pool", map[string]any{"error": err.Error()})
				}
			case <-m.stop:
				return
			}
		}
	}()
	return nil
}

// Stop ends sampling; it is safe to call more than once
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Snapshot returns the latest sample as log/JSON fields, or nil before the first one
func (m *ConnectionPoolMonitor) Snapshot() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.seen {
		return nil
	}
	return statsFields(m.last)
}

func (m *ConnectionPoolMonitor) sample() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	stats := sqlDB.Stats()

	m.mu.Lock()
	prev, hadPrev := m.last, m.seen
	m.last, m.seen = stats, true
	m.mu.Unlock()

	// a single-connection pool is fully in use whenever a unit of work runs
	if stats.MaxOpenConnections > 1 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolBusyRatio {
		m.logger.Warn("Database connection pool nearly exhausted", statsFields(stats))
	}
	if hadPrev && stats.WaitCount > prev.WaitCount {
		fields := statsFields(stats)
		fields["new_waits"] = stats.WaitCount - prev.WaitCount
		fields["new_wait_time"] = (stats.WaitDuration - prev.WaitDuration).String()
		m.logger.Warn("Callers waited for a database connection", fields)
	}
	return nil
}

func statsFields(stats sql.DBStats) map[string]any {
	return map[string]any{
		"open":          stats.OpenConnections,
		"in_use":        stats.InUse,
		"idle":          stats.Idle,
		"max_open":      stats.MaxOpenConnections,
		"wait_count":    stats.WaitCount,
		"wait_duration": stats.WaitDuration.String(),
	}
}
