package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler answers load balancer checks. The API is only healthy when
// PostgreSQL answers too.
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler takes the database ping; nil skips the database check
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// @Summary Health Check
// @Description API and database reachability
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			logger.Warn("Health check: database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "degradado",
				"service":  "contratus-api",
				"database": "indisponível",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "contratus-api",
		"database": "ok",
	})
}
