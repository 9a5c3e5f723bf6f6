package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/db"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

const healthPingTimeout = 2 * time.Second

// HealthController reports readiness
type HealthController struct {
	database db.Database
}

// NewHealthController creates a new HealthController
func NewHealthController(database db.Database) *HealthController {
	return &HealthController{database: database}
}

// Health godoc
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := c.database.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check: database ping failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: "down"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}
