package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.health.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed",
			slog.Any("error", err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": h.service,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
	})
}
