package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboarddto "github.com/adagency-io/adagency/internal/application/dashboard/dto"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

type dashboardService interface {
	Stats(ctx context.Context) (*dashboarddto.StatsResponse, error)
}

// DashboardHandler handles the summary cards of the front page
type DashboardHandler struct {
	service dashboardService
	logger  logger.Interface
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service dashboardService, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// GetStats handles GET /dashboard/stats
// @Summary Dashboard counters
// @Description Advertiser count, ad count, active contract count and total views in one call
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboarddto.StatsResponse
// @Failure 500 {object} utils.ErrorBody
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.service.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
