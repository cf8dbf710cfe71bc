package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/interfaces/http/handlers"
)

type ContractRouteConfig struct {
	ContractHandler *handlers.ContractHandler
}

func SetupContractRoutes(api *gin.RouterGroup, config *ContractRouteConfig) {
	contracts := api.Group("/contracts")
	{
		contracts.GET("", config.ContractHandler.ListContracts)
		contracts.POST("", config.ContractHandler.CreateContract)

		// Specific paths are registered before /:id
		contracts.GET("/active-count", config.ContractHandler.CountActiveContracts)

		contracts.GET("/:id", config.ContractHandler.GetContract)
		contracts.PUT("/:id", config.ContractHandler.UpdateContract)
		contracts.DELETE("/:id", config.ContractHandler.DeleteContract)
	}
}
