package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/interfaces/http/handlers"
)

type AdRouteConfig struct {
	AdHandler *handlers.AdHandler
}

func SetupAdRoutes(api *gin.RouterGroup, config *AdRouteConfig) {
	ads := api.Group("/ads")
	{
		ads.GET("", config.AdHandler.ListAds)
		ads.POST("", config.AdHandler.CreateAd)

		// Specific paths are registered before /:id
		ads.GET("/count", config.AdHandler.CountAds)
		ads.GET("/:id/analytics", config.AdHandler.ListAdAnalytics)

		ads.GET("/:id", config.AdHandler.GetAd)
		ads.PUT("/:id", config.AdHandler.UpdateAd)
		ads.DELETE("/:id", config.AdHandler.DeleteAd)
	}
}
