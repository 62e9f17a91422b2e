package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"temple-server/api"
	"temple-server/api/backend"
	"temple-server/config"
	redisdao "temple-server/dao/redis"
	"temple-server/db"
	"temple-server/server"
	"temple-server/server/handlers"
	"temple-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient         db.RedisClient
	RedisMetricsDao     *redisdao.RedisMetricsDAO
	BackendAPI          backend.BackendAPI
	MetricsGateway      *service.MetricsGateway
	AnalyticsService    *service.AnalyticsService
	DatasetLoader       *service.DatasetLoader
	MetricsPoller       *service.MetricsPoller
	MetricsHandler      *handlers.MetricsHandler
	AnalyticsHandler    *handlers.AnalyticsHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	TempleOpsHttpServer *server.TempleOpsHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewKVRedisClient(ctx, redisInternalClient)
	}

	// Initialize Redis Metrics DAO
	redisMetricsDao := redisdao.NewRedisMetricsDAO(redisClient)

	// Initialize BackendAPI. The configured-backend flag is computed once
	// here; a nil client means the gateway runs fully synthetic.
	var backendApiClient backend.BackendAPI
	if env != "prod" {
		backendApiClient = backend.NewBackendApiClientMock()
		log.Printf("Using mock backend api")
	} else if base := config.BackendAPIBase(); base != "" {
		log.Printf("Using backend api at %s", base)
		httpClient := api.NewHTTPClient(base)
		backendApiClient = backend.NewBackendApiClient(httpClient)
	} else {
		log.Printf("No backend api configured, running synthetic")
	}

	// Initialize the gateway with its synthetic fallback
	metricsGateway := service.NewMetricsGateway(backendApiClient, service.NewDefaultSyntheticGenerator())

	// Initialize the analytics aggregation layer
	analyticsService := service.NewAnalyticsService()
	datasetLoader := service.NewDatasetLoader(analyticsService)

	// Initialize the realtime metrics poller
	metricsPoller := service.NewMetricsPoller(
		metricsGateway, analyticsService, redisMetricsDao, config.REALTIME_POLL_INTERVAL)

	// Initialize handlers
	metricsHandler := handlers.NewMetricsHandler(metricsGateway, analyticsService, redisMetricsDao)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(metricsHandler, analyticsHandler, muxRouter)

	// initialize temple ops server
	templeOpsHttpServer := server.NewTempleOpsHttpServer(router, muxRouter)

	return &Container{
		RedisClient:         redisClient,
		RedisMetricsDao:     redisMetricsDao,
		BackendAPI:          backendApiClient,
		MetricsGateway:      metricsGateway,
		AnalyticsService:    analyticsService,
		DatasetLoader:       datasetLoader,
		MetricsPoller:       metricsPoller,
		MetricsHandler:      metricsHandler,
		AnalyticsHandler:    analyticsHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		TempleOpsHttpServer: templeOpsHttpServer,
	}
}
