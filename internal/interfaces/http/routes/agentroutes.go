package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/interfaces/http/handlers"
)

type AgentRouteConfig struct {
	AgentHandler *handlers.AgentHandler
}

func SetupAgentRoutes(api *gin.RouterGroup, config *AgentRouteConfig) {
	agents := api.Group("/agents")
	{
		agents.GET("", config.AgentHandler.ListAgents)
		agents.POST("", config.AgentHandler.CreateAgent)

		agents.GET("/:id", config.AgentHandler.GetAgent)
		agents.PUT("/:id", config.AgentHandler.UpdateAgent)
		agents.DELETE("/:id", config.AgentHandler.DeleteAgent)
	}
}
