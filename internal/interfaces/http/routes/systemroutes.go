package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/interfaces/http/handlers"
)

type SystemRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
	HealthHandler    *handlers.HealthHandler
}

func SetupSystemRoutes(api *gin.RouterGroup, config *SystemRouteConfig) {
	api.GET("/health", config.HealthHandler.Health)
	api.GET("/dashboard/stats", config.DashboardHandler.GetStats)
}
