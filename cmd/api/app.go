package main

import (
	"net/http"
	"os"

	"homefeed-listings/internal/handlers"
	"homefeed-listings/internal/middleware"
	"homefeed-listings/internal/repositories"
	"homefeed-listings/internal/services"
	"homefeed-listings/internal/transformers"
	"homefeed-listings/internal/validators"
	"homefeed-listings/pkg/cache"
	"homefeed-listings/pkg/config"
	"homefeed-listings/pkg/database"
	"homefeed-listings/pkg/logger"
	"homefeed-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	ListingHandler *handlers.ListingHandler
	FeedHandler    *handlers.FeedHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	listingRepo := repositories.NewListingRepository()
	rawListingRepo := repositories.NewRawListingRepository()
	rawPhotoRepo := repositories.NewRawPhotoRepository()
	listingCache := repositories.NewListingCache()

	// transformers
	addrFormatter := transformers.NewAddressFormatter()
	listingTransformer := transformers.NewListingTransformer(addrFormatter)

	// validators
	listingValidator := validators.NewListingValidator()
	filterValidator := validators.NewFilterValidator()

	// services
	listingService := services.NewListingService(listingRepo, listingCache, listingValidator)
	filterService := services.NewFilterService(rawListingRepo, rawPhotoRepo, listingCache, listingTransformer)

	// handlers
	a.ListingHandler = handlers.NewListingHandler(listingService)
	a.FeedHandler = handlers.NewFeedHandler(filterService, filterValidator)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
