package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/interfaces/dto"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// AdvertiserHandler handles /advertisers requests
type AdvertiserHandler struct {
	service advertiserService
	counter advertiserCounter
	logger  logger.Interface
}

func NewAdvertiserHandler(service advertiserService, counter advertiserCounter, logger logger.Interface) *AdvertiserHandler {
	return &AdvertiserHandler{
		service: service,
		counter: counter,
		logger:  logger,
	}
}

// ListAdvertisers handles GET /advertisers
// @Summary List advertisers
// @Description Get all advertisers ordered by id
// @Tags advertisers
// @Produce json
// @Success 200 {array} advertiserdto.AdvertiserResponse
// @Failure 500 {object} utils.ErrorBody
// @Router /advertisers [get]
func (h *AdvertiserHandler) ListAdvertisers(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result)
}

// GetAdvertiser handles GET /advertisers/:id
// @Summary Get advertiser by ID
// @Tags advertisers
// @Produce json
// @Param id path int true "Advertiser ID"
// @Success 200 {object} advertiserdto.AdvertiserResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /advertisers/{id} [get]
func (h *AdvertiserHandler) GetAdvertiser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "advertiser")
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

// CreateAdvertiser handles POST /advertisers
// @Summary Create an advertiser
// @Tags advertisers
// @Accept json
// @Produce json
// @Param advertiser body dto.AdvertiserRequest true "Advertiser data"
// @Success 201 {object} advertiserdto.AdvertiserResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /advertisers [post]
func (h *AdvertiserHandler) CreateAdvertiser(c *gin.Context) {
	var req dto.AdvertiserRequest
	if err := dto.Bind(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create advertiser", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateAdvertiser handles PUT /advertisers/:id
// @Summary Replace an advertiser
// @Tags advertisers
// @Accept json
// @Produce json
// @Param id path int true "Advertiser ID"
// @Param advertiser body dto.AdvertiserRequest true "Advertiser data"
// @Success 200 {object} advertiserdto.AdvertiserResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /advertisers/{id} [put]
func (h *AdvertiserHandler) UpdateAdvertiser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "advertiser")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AdvertiserRequest
	if err := dto.Bind(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update advertiser", "advertiser_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteAdvertiser handles DELETE /advertisers/:id
// @Summary Delete an advertiser
// @Description Fails with 409 while ads or contracts reference the advertiser
// @Tags advertisers
// @Produce json
// @Param id path int true "Advertiser ID"
// @Success 200 {object} utils.DeletedResponse
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /advertisers/{id} [delete]
func (h *AdvertiserHandler) DeleteAdvertiser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "advertiser")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeleteResponse(c, constants.MsgAdvertiserDeleted, deleted)
}

// CountAdvertisers handles GET /advertisers/count
// @Summary Count advertisers
// @Tags advertisers
// @Produce json
// @Success 200 {object} utils.CountResponse
// @Router /advertisers/count [get]
func (h *AdvertiserHandler) CountAdvertisers(c *gin.Context) {
	count, err := h.counter.AdvertiserCount(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, utils.CountResponse{Count: count})
}
