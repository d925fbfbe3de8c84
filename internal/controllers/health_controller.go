package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shortlink-be/internal/service"
)

const healthTimeout = 2 * time.Second

type HealthController struct {
	urlService service.URLService
	logger     *slog.Logger
}

func NewHealthController(urlService service.URLService, logger *slog.Logger) *HealthController {
	return &HealthController{
		urlService: urlService,
		logger:     logger,
	}
}

// Check handles GET /health
func (hc *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := hc.urlService.Ping(ctx); err != nil {
		hc.logger.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
