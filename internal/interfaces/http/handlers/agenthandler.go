package handlers

import (
	"github.com/gin-gonic/gin"

	agentdto "github.com/adagency-io/adagency/internal/application/agent/dto"
	"github.com/adagency-io/adagency/internal/interfaces/dto"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"
)

// AgentHandler handles /agents requests
type AgentHandler struct {
	service agentService
	logger  logger.Interface
}

func NewAgentHandler(service agentService, logger logger.Interface) *AgentHandler {
	return &AgentHandler{
		service: service,
		logger:  logger,
	}
}

// ListAgents handles GET /agents
// @Summary List agents
// @Tags agents
// @Produce json
// @Success 200 {array} agentdto.AgentResponse
// @Failure 500 {object} utils.ErrorBody
// @Router /agents [get]
func (h *AgentHandler) ListAgents(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, result)
}

// GetAgent handles GET /agents/:id
// @Summary Get agent by ID
// @Tags agents
// @Produce json
// @Param id path int true "Agent ID"
// @Success 200 {object} agentdto.AgentResponse
// @Failure 404 {object} utils.ErrorBody
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "agent")
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

// CreateAgent handles POST /agents
// @Summary Create an agent
// @Description Accepts camelCase fields; full_name, commission_rate and hire_date are accepted as aliases
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body dto.AgentRequest true "Agent data"
// @Success 201 {object} agentdto.AgentResponse
// @Failure 400 {object} utils.ErrorBody
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	cmd, ok := h.bindAgent(c)
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

// UpdateAgent handles PUT /agents/:id
// @Summary Replace an agent
// @Tags agents
// @Accept json
// @Produce json
// @Param id path int true "Agent ID"
// @Param agent body dto.AgentRequest true "Agent data"
// @Success 200 {object} agentdto.AgentResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, ok := h.bindAgent(c)
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

// DeleteAgent handles DELETE /agents/:id
// @Summary Delete an agent
// @Description Fails with 409 while contracts reference the agent
// @Tags agents
// @Produce json
// @Param id path int true "Agent ID"
// @Success 200 {object} utils.DeletedResponse
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DeleteResponse(c, constants.MsgAgentDeleted, deleted)
}

func (h *AgentHandler) bindAgent(c *gin.Context) (agentdto.AgentCommand, bool) {
	var req dto.AgentRequest
	if err := dto.Bind(c, &req); err != nil {
		h.logger.Warnw("invalid request body for agent", "method", c.Request.Method, "error", err)
		utils.ErrorResponseWithError(c, err)
		return agentdto.AgentCommand{}, false
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return agentdto.AgentCommand{}, false
	}
	return cmd, true
}
