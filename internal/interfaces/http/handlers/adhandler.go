package handlers

import (
	"github.com/gin-gonic/gin"

	addto "github.com/adagency-io/adagency/internal/application/ad/dto"
	"github.com/adagency-io/adagency/internal/interfaces/dto"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// AdHandler handles /ads requests
type AdHandler struct {
	service   adService
	counter   adCounter
	analytics adAnalyticsLister
	logger    logger.Interface
}

func NewAdHandler(service adService, counter adCounter, analytics adAnalyticsLister, logger logger.Interface) *AdHandler {
	return &AdHandler{
		service:   service,
		counter:   counter,
		analytics: analytics,
		logger:    logger,
	}
}

// ListAds handles GET /ads
// @Summary List ads
// @Description Newest publication first, with the advertiser name and rendered info
// @Tags ads
// @Produce json
// @Success 200 {array} addto.AdResponse
// @Failure 500 {object} utils.ErrorBody
// @Router /ads [get]
func (h *AdHandler) ListAds(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result)
}

// GetAd handles GET /ads/:id
// @Summary Get ad by ID
// @Tags ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} addto.AdResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /ads/{id} [get]
func (h *AdHandler) GetAd(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ad")
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

// CreateAd handles POST /ads
// @Summary Create an ad
// @Tags ads
// @Accept json
// @Produce json
// @Param ad body dto.AdRequest true "Ad data"
// @Success 201 {object} addto.AdResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /ads [post]
func (h *AdHandler) CreateAd(c *gin.Context) {
	cmd, ok := h.bindAd(c)
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

// UpdateAd handles PUT /ads/:id
// @Summary Replace an ad
// @Tags ads
// @Accept json
// @Produce json
// @Param id path int true "Ad ID"
// @Param ad body dto.AdRequest true "Ad data"
// @Success 200 {object} addto.AdResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /ads/{id} [put]
func (h *AdHandler) UpdateAd(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ad")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, ok := h.bindAd(c)
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

// DeleteAd handles DELETE /ads/:id
// @Summary Delete an ad
// @Description Fails with 409 while analytics records reference the ad
// @Tags ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} utils.DeletedResponse
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /ads/{id} [delete]
func (h *AdHandler) DeleteAd(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ad")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeleteResponse(c, constants.MsgAdDeleted, deleted)
}

// CountAds handles GET /ads/count
// @Summary Count ads
// @Tags ads
// @Produce json
// @Success 200 {object} utils.CountResponse
// @Router /ads/count [get]
func (h *AdHandler) CountAds(c *gin.Context) {
	count, err := h.counter.AdCount(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, utils.CountResponse{Count: count})
}

// ListAdAnalytics handles GET /ads/:id/analytics
// @Summary List the analytics records of an ad
// @Tags ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {array} analyticsdto.AnalyticsResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /ads/{id}/analytics [get]
func (h *AdHandler) ListAdAnalytics(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ad")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.analytics.ListByAd(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result)
}

func (h *AdHandler) bindAd(c *gin.Context) (addto.AdCommand, bool) {
	var req dto.AdRequest
	if err := dto.Bind(c, &req); err != nil {
		h.logger.Warnw("invalid request body for ad", "method", c.Request.Method, "error", err)
		utils.ErrorResponseWithError(c, err)
		return addto.AdCommand{}, false
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return addto.AdCommand{}, false
	}
	return cmd, true
}
