package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
)

// SlowUnitOfWorkThreshold is the duration above which a unit of work is logged
const SlowUnitOfWorkThreshold = 250 * time.Millisecond

// UnitOfWorkMetrics holds metrics about one attempt of a unit of work
type UnitOfWorkMetrics struct {
	Attempt      int
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector collects unit of work metrics
type MetricsCollector struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MeasureUnitOfWork times fn and logs attempts slower than SlowUnitOfWorkThreshold
func (c *MetricsCollector) MeasureUnitOfWork(ctx context.Context, attempt int, fn func() error) (*UnitOfWorkMetrics, error) {
	start := c.timeProvider.Now()
	err := fn()

	metrics := &UnitOfWorkMetrics{
		Attempt:  attempt,
		Duration: c.timeProvider.Since(start),
		Failed:   err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > SlowUnitOfWorkThreshold {
		c.logger.Warn("Slow unit of work detected", map[string]any{
			"attempt":       attempt,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
			"request_id":    applogger.RequestIDFromContext(ctx),
		})
	}
	return metrics, err
}
