package handlers

import (
	"github.com/gin-gonic/gin"

	analyticsdto "github.com/adagency-io/adagency/internal/application/analytics/dto"
	"github.com/adagency-io/adagency/internal/interfaces/dto"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// AnalyticsHandler handles /analytics requests
type AnalyticsHandler struct {
	service analyticsService
	totaler viewsTotaler
	logger  logger.Interface
}

func NewAnalyticsHandler(service analyticsService, totaler viewsTotaler, logger logger.Interface) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		totaler: totaler,
		logger:  logger,
	}
}

// ListAnalytics handles GET /analytics
// @Summary List analytics records
// @Description Highest rating first
// @Tags analytics
// @Produce json
// @Success 200 {array} analyticsdto.AnalyticsResponse
// @Failure 500 {object} utils.ErrorBody
// @Router /analytics [get]
func (h *AnalyticsHandler) ListAnalytics(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result)
}

// GetAnalytics handles GET /analytics/:id
// @Summary Get analytics record by ID
// @Tags analytics
// @Produce json
// @Param id path int true "Analytics record ID"
// @Success 200 {object} analyticsdto.AnalyticsResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /analytics/{id} [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "analytics record")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// CreateAnalytics handles POST /analytics
// @Summary Create an analytics record
// @Tags analytics
// @Accept json
// @Produce json
// @Param record body dto.AnalyticsRequest true "Analytics data"
// @Success 201 {object} analyticsdto.AnalyticsResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /analytics [post]
func (h *AnalyticsHandler) CreateAnalytics(c *gin.Context) {
	cmd, ok := h.bindAnalytics(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateAnalytics handles PUT /analytics/:id
// @Summary Replace an analytics record
// @Tags analytics
// @Accept json
// @Produce json
// @Param id path int true "Analytics record ID"
// @Param record body dto.AnalyticsRequest true "Analytics data"
// @Success 200 {object} analyticsdto.AnalyticsResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /analytics/{id} [put]
func (h *AnalyticsHandler) UpdateAnalytics(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "analytics record")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, ok := h.bindAnalytics(c)
	if !ok {
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteAnalytics handles DELETE /analytics/:id
// @Summary Delete an analytics record
// @Tags analytics
// @Produce json
// @Param id path int true "Analytics record ID"
// @Success 200 {object} utils.DeletedResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /analytics/{id} [delete]
func (h *AnalyticsHandler) DeleteAnalytics(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "analytics record")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeleteResponse(c, constants.MsgAnalyticsDeleted, deleted)
}

// TotalViews handles GET /analytics/total-views
// @Summary Sum of viewers over all analytics records
// @Tags analytics
// @Produce json
// @Success 200 {object} utils.TotalResponse
// @Router /analytics/total-views [get]
func (h *AnalyticsHandler) TotalViews(c *gin.Context) {
	total, err := h.totaler.TotalViews(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, utils.TotalResponse{Total: total})
}

func (h *AnalyticsHandler) bindAnalytics(c *gin.Context) (analyticsdto.AnalyticsCommand, bool) {
	var req dto.AnalyticsRequest
	if err := dto.Bind(c, &req); err != nil {
		h.logger.Warnw("invalid request body for analytics", "method", c.Request.Method, "error", err)
		utils.ErrorResponseWithError(c, err)
		return analyticsdto.AnalyticsCommand{}, false
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return analyticsdto.AnalyticsCommand{}, false
	}
	return cmd, true
}
