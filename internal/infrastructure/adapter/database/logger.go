package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
)

// DefaultSlowQueryThreshold marks queries that are logged as slow
const DefaultSlowQueryThreshold = 200 * time.Millisecond

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// ParseGormLogLevel maps the configured SQL log level onto GORM's levels
func ParseGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// NewGormLogger creates a GORM logger backed by coreLogger
func NewGormLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string) gormlogger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger.With(map[string]any{"source": "database"}),
		logLevel:      ParseGormLogLevel(level),
		slowThreshold: DefaultSlowQueryThreshold,
		timeProvider:  timeProvider,
	}
}

// LogMode returns a copy of the logger at level
func (l *DatabaseLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		l.coreLogger.Info(msg, nil)
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		l.coreLogger.Warn(msg, nil)
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(_ context.Context, msg string, _ ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		l.coreLogger.Error(msg, nil)
	}
}

// Trace logs SQL statements. Missing rows are expected by callers and are not errors.
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
	}
	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if requestID := applogger.RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= gormlogger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Warn("SQL error", fields)
	case elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn:
		l.coreLogger.Warn("Slow SQL query", fields)
	case l.logLevel >= gormlogger.Info:
		l.coreLogger.Debug("SQL query", fields)
	}
}

// extractQueryType returns the leading SQL verb
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, verb) {
			return verb
		}
	}
	return ""
}
