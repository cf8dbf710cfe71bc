package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/interfaces/http/handlers"
)

type AnalyticsRouteConfig struct {
	AnalyticsHandler *handlers.AnalyticsHandler
}

func SetupAnalyticsRoutes(api *gin.RouterGroup, config *AnalyticsRouteConfig) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("", config.AnalyticsHandler.ListAnalytics)
		analytics.POST("", config.AnalyticsHandler.CreateAnalytics)

		// Specific paths are registered before /:id
		analytics.GET("/total-views", config.AnalyticsHandler.TotalViews)

		analytics.GET("/:id", config.AnalyticsHandler.GetAnalytics)
		analytics.PUT("/:id", config.AnalyticsHandler.UpdateAnalytics)
		analytics.DELETE("/:id", config.AnalyticsHandler.DeleteAnalytics)
	}
}
