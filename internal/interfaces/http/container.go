package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adApp "github.com/adagency-io/adagency/internal/application/ad"
	advertiserApp "github.com/adagency-io/adagency/internal/application/advertiser"
	agentApp "github.com/adagency-io/adagency/internal/application/agent"
	analyticsApp "github.com/adagency-io/adagency/internal/application/analytics"
	contractApp "github.com/adagency-io/adagency/internal/application/contract"
	dashboardApp "github.com/adagency-io/adagency/internal/application/dashboard"
	"github.com/adagency-io/adagency/internal/domain/ad"
	"github.com/adagency-io/adagency/internal/domain/advertiser"
	"github.com/adagency-io/adagency/internal/domain/agent"
	"github.com/adagency-io/adagency/internal/domain/analytics"
	"github.com/adagency-io/adagency/internal/domain/contract"
	"github.com/adagency-io/adagency/internal/infrastructure/config"
	"github.com/adagency-io/adagency/internal/infrastructure/database"
	"github.com/adagency-io/adagency/internal/infrastructure/repository"
	"github.com/adagency-io/adagency/internal/interfaces/http/handlers"
	"github.com/adagency-io/adagency/internal/shared/db"
	"github.com/adagency-io/adagency/internal/shared/logger"
	"github.com/adagency-io/adagency/internal/shared/services/markdown"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	advertiserRepo advertiser.Repository
	agentRepo      agent.Repository
	adRepo         ad.Repository
	contractRepo   contract.Repository
	analyticsRepo  analytics.Repository
	statsRepo      *repository.StatsRepositoryImpl
}

// services holds the application services.
type services struct {
	advertiser *advertiserApp.Service
	agent      *agentApp.Service
	ad         *adApp.Service
	contract   *contractApp.Service
	analytics  *analyticsApp.Service
	dashboard  *dashboardApp.Service
}

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	advertiserHandler *handlers.AdvertiserHandler
	agentHandler      *handlers.AgentHandler
	adHandler         *handlers.AdHandler
	contractHandler   *handlers.ContractHandler
	analyticsHandler  *handlers.AnalyticsHandler
	dashboardHandler  *handlers.DashboardHandler
	healthHandler     *handlers.HealthHandler
}

// Container wires repositories, services and handlers around one database
// handle. The handle is owned by the caller.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	svcs  *services
	hdlrs *allHandlers
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		advertiserRepo: repository.NewAdvertiserRepository(c.db),
		agentRepo:      repository.NewAgentRepository(c.db),
		adRepo:         repository.NewAdRepository(c.db),
		contractRepo:   repository.NewContractRepository(c.db),
		analyticsRepo:  repository.NewAnalyticsRepository(c.db),
		statsRepo:      repository.NewStatsRepository(c.db),
	}
}

func (c *Container) initServices() {
	txManager := db.NewTransactionManager(c.db)
	r := c.repos

	c.svcs = &services{
		advertiser: advertiserApp.NewService(r.advertiserRepo, txManager, c.log.Named("advertiser")),
		agent:      agentApp.NewService(r.agentRepo, txManager, c.log.Named("agent")),
		ad:         adApp.NewService(r.adRepo, r.advertiserRepo, markdown.NewRenderer(), txManager, c.log.Named("ad")),
		contract:   contractApp.NewService(r.contractRepo, r.advertiserRepo, r.agentRepo, c.log.Named("contract")),
		analytics:  analyticsApp.NewService(r.analyticsRepo, r.adRepo, c.log.Named("analytics")),
		dashboard:  dashboardApp.NewService(r.statsRepo, c.log.Named("dashboard")),
	}
}

func (c *Container) initHandlers() {
	s := c.svcs

	c.hdlrs = &allHandlers{
		advertiserHandler: handlers.NewAdvertiserHandler(s.advertiser, s.dashboard, c.log),
		agentHandler:      handlers.NewAgentHandler(s.agent, c.log),
		adHandler:         handlers.NewAdHandler(s.ad, s.dashboard, s.analytics, c.log),
		contractHandler:   handlers.NewContractHandler(s.contract, s.dashboard, c.log),
		analyticsHandler:  handlers.NewAnalyticsHandler(s.analytics, s.dashboard, c.log),
		dashboardHandler:  handlers.NewDashboardHandler(s.dashboard, c.log),
		healthHandler: handlers.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, c.db)
		}, c.log),
	}
}
