package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/adagency-io/adagency/internal/infrastructure/config"
	"github.com/adagency-io/adagency/internal/interfaces/http/middleware"
	"github.com/adagency-io/adagency/internal/interfaces/http/routes"
	"github.com/adagency-io/adagency/internal/interfaces/web"
	"github.com/adagency-io/adagency/internal/shared/constants"
	"github.com/adagency-io/adagency/internal/shared/errors"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/utils"

	_ "github.com/adagency-io/adagency/docs"
)

const defaultMetricsPath = "/metrics"

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter wires every component around gdb. Call SetupRoutes before serving.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{container: NewContainer(gdb, cfg, log)}
}

// SetupRoutes configures the middleware chain and all HTTP routes
func (r *Router) SetupRoutes() error {
	c := r.container
	engine := c.engine

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.Logger(c.log))
	if c.cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	apiPrefix := c.cfg.Server.APIPrefix
	if apiPrefix == "" {
		apiPrefix = constants.DefaultAPIPrefix
	}
	api := engine.Group(apiPrefix)

	h := c.hdlrs
	routes.SetupAdvertiserRoutes(api, &routes.AdvertiserRouteConfig{AdvertiserHandler: h.advertiserHandler})
	routes.SetupAgentRoutes(api, &routes.AgentRouteConfig{AgentHandler: h.agentHandler})
	routes.SetupAdRoutes(api, &routes.AdRouteConfig{AdHandler: h.adHandler})
	routes.SetupContractRoutes(api, &routes.ContractRouteConfig{ContractHandler: h.contractHandler})
	routes.SetupAnalyticsRoutes(api, &routes.AnalyticsRouteConfig{AnalyticsHandler: h.analyticsHandler})
	routes.SetupSystemRoutes(api, &routes.SystemRouteConfig{
		DashboardHandler: h.dashboardHandler,
		HealthHandler:    h.healthHandler,
	})

	if c.cfg.Metrics.Enabled {
		metricsPath := c.cfg.Metrics.Path
		if metricsPath == "" {
			metricsPath = defaultMetricsPath
		}
		engine.GET(metricsPath, gin.WrapH(promhttp.Handler()))
	}
	if c.cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if err := web.Register(engine); err != nil {
		return err
	}

	engine.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, apiPrefix+"/") {
			utils.ErrorResponseWithError(ctx, errors.NewNotFoundError(constants.ErrMsgResourceNotFound, ctx.Request.URL.Path))
			return
		}
		utils.ErrorResponse(ctx, http.StatusNotFound, constants.ErrMsgResourceNotFound)
	})

	return nil
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}
