package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adagency-io/adagency/internal/interfaces/http/handlers"
)

type AdvertiserRouteConfig struct {
	AdvertiserHandler *handlers.AdvertiserHandler
}

func SetupAdvertiserRoutes(api *gin.RouterGroup, config *AdvertiserRouteConfig) {
	advertisers := api.Group("/advertisers")
	{
		advertisers.GET("", config.AdvertiserHandler.ListAdvertisers)
		advertisers.POST("", config.AdvertiserHandler.CreateAdvertiser)

		// Specific paths are registered before /:id
		advertisers.GET("/count", config.AdvertiserHandler.CountAdvertisers)

		advertisers.GET("/:id", config.AdvertiserHandler.GetAdvertiser)
		advertisers.PUT("/:id", config.AdvertiserHandler.UpdateAdvertiser)
		advertisers.DELETE("/:id", config.AdvertiserHandler.DeleteAdvertiser)
	}
}
