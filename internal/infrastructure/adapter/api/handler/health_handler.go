package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// Pinger checks that a backing store answers
type Pinger interface {
	Ping(ctx context.Context) error
}

type poolReporter interface {
	PoolStats() map[string]any
}

// HealthHandler reports liveness together with database reachability
type HealthHandler struct {
	db           Pinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, timeProvider: timeProvider, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	start := h.timeProvider.Now()
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	body := gin.H{
		"status":      "healthy",
		"database":    "ok",
		"db_ping_ms":  h.timeProvider.Since(start).Milliseconds(),
		"server_time": h.timeProvider.Now().UTC(),
	}
	if pool, ok := h.db.(poolReporter); ok {
		if stats := pool.PoolStats(); stats != nil {
			body["db_pool"] = stats
		}
	}
	c.JSON(http.StatusOK, body)
}
