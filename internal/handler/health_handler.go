package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Pinger checks reachability of the backing data service
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probe endpoints
type HealthHandler struct {
	storage Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(storage Pinger) *HealthHandler {
	return &HealthHandler{storage: storage}
}

// Ping is the basic health check
// @Summary Ping
// @Description Checks that the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness checks the service and its data dependency
// @Summary Readiness check
// @Description Checks that the service and its storage backend are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if err := h.storage.Ping(ctx); err != nil {
		c.JSON(503, utils.H{
			"status":  "not_ready",
			"storage": "unhealthy",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(200, utils.H{
		"status":  "ready",
		"storage": "healthy",
	})
}

// Liveness is the liveness probe
// @Summary Liveness check
// @Description Checks that the process is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
