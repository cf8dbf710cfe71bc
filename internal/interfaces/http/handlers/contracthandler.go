package handlers

import (
	"github.com/gin-gonic/gin"

	contractdto "github.com/adagency-io/adagency/internal/application/contract/dto"
	"github.com/adagency-io/adagency/internal/interfaces/dto"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// ContractHandler handles /contracts requests
type ContractHandler struct {
	service contractService
	counter activeContractCounter
	logger  logger.Interface
}

func NewContractHandler(service contractService, counter activeContractCounter, logger logger.Interface) *ContractHandler {
	return &ContractHandler{
		service: service,
		counter: counter,
		logger:  logger,
	}
}

// ListContracts handles GET /contracts
// @Summary List contracts
// @Description Most recently signed first, with party names and Russian duration labels
// @Tags contracts
// @Produce json
// @Success 200 {array} contractdto.ContractResponse
// @Failure 500 {object} utils.ErrorBody
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result)
}

// GetContract handles GET /contracts/:id
// @Summary Get contract by ID
// @Tags contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} contractdto.ContractResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contract")
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

// CreateContract handles POST /contracts
// @Summary Create a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body dto.ContractRequest true "Contract data"
// @Success 201 {object} contractdto.ContractResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	cmd, ok := h.bindContract(c)
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

// UpdateContract handles PUT /contracts/:id
// @Summary Replace a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param contract body dto.ContractRequest true "Contract data"
// @Success 200 {object} contractdto.ContractResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /contracts/{id} [put]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contract")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, ok := h.bindContract(c)
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

// DeleteContract handles DELETE /contracts/:id
// @Summary Delete a contract
// @Tags contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} utils.DeletedResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "contract")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeleteResponse(c, constants.MsgContractDeleted, deleted)
}

// CountActiveContracts handles GET /contracts/active-count
// @Summary Count active contracts
// @Tags contracts
// @Produce json
// @Success 200 {object} utils.CountResponse
// @Router /contracts/active-count [get]
func (h *ContractHandler) CountActiveContracts(c *gin.Context) {
	count, err := h.counter.ActiveContractCount(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, utils.CountResponse{Count: count})
}

func (h *ContractHandler) bindContract(c *gin.Context) (contractdto.ContractCommand, bool) {
	var req dto.ContractRequest
	if err := dto.Bind(c, &req); err != nil {
		h.logger.Warnw("invalid request body for contract", "method", c.Request.Method, "error", err)
		utils.ErrorResponseWithError(c, err)
		return contractdto.ContractCommand{}, false
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return contractdto.ContractCommand{}, false
	}
	return cmd, true
}
