package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/pkg/database"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/redis"
)

// HealthHandler exposes liveness and readiness probes
type HealthHandler struct {
	db    *database.PostgresDB
	cache *redis.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health is the liveness probe, it only confirms the process is serving
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready is the readiness probe. Postgres is required, Redis is reported
// but does not fail readiness because position caching degrades gracefully.
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	checks := gin.H{"postgres": "ok", "redis": "ok"}
	status := http.StatusOK

	if err := h.db.HealthCheck(ctx); err != nil {
		checks["postgres"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if h.cache == nil || !h.cache.Available() {
		checks["redis"] = "unavailable"
	} else if err := h.cache.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
