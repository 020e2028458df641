package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forklion/forklion-api/internal/config"
)

// HealthHandler reports service health and the active configuration
type HealthHandler struct {
	cfg     *config.Config
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, version string) *HealthHandler {
	return &HealthHandler{cfg: cfg, version: version}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"version":     h.version,
		"environment": h.cfg.Environment,
		"ai_provider": h.cfg.AIProvider,
	})
}
