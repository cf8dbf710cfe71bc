package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

const healthCheckTimeout = 3 * time.Second

// PingFunc reports whether the database answers.
type PingFunc func(ctx context.Context) error

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

type HealthHandler struct {
	ping   PingFunc
	logger logger.Interface
}

func NewHealthHandler(ping PingFunc, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		ping:   ping,
		logger: logger,
	}
}

// Health handles GET /health
// @Summary Liveness and database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Errorw("database health check failed", "error", err)
		utils.SuccessResponse(c, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "disconnected",
			Time:     utils.NowUTC(),
		})
		return
	}

	utils.OKResponse(c, HealthResponse{
		Status:   "ok",
		Database: "connected",
		Time:     utils.NowUTC(),
	})
}
