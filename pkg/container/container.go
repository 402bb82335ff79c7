package container

import (
	"context"
	"fmt"
	"time"

	"bookstore-map/internal/config"
	bookstoreHandler "bookstore-map/internal/domains/bookstore/handler"
	bookstoreRepo "bookstore-map/internal/domains/bookstore/repository"
	bookstoreService "bookstore-map/internal/domains/bookstore/service"
	infraCache "bookstore-map/internal/infrastructure/cache"
	"bookstore-map/pkg/cache"
	"bookstore-map/pkg/logger"
	"bookstore-map/pkg/metrics"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the application.
// Lifecycle: one instance per process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config  *config.Config
	Cache   cache.Cache // Redis, used for selection state only
	Metrics *metrics.Metrics

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	RecordRepo     bookstoreRepo.RecordRepository
	SelectionStore bookstoreRepo.SelectionStore

	// ========================================
	// SERVICE LAYER
	// ========================================
	BookstoreService bookstoreService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	BookstoreHandler *bookstoreHandler.BookstoreHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// 1. Config
// 2. Infrastructure (metrics, cache)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	logger.Debug("🔧 Initializing DI Container...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Info("✅ Config loaded", map[string]interface{}{
		"environment":  cfg.App.Environment,
		"opendata_url": cfg.OpenData.URL,
	})

	c := &Container{
		Config:  cfg,
		Metrics: metrics.New(),
	}

	// ========================================
	// CACHE
	// ========================================
	// Redis failure không critical - log warning và continue
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("⚠️  Redis connection failed (non-critical), selections will not be retained until it is reachable", err)
	} else {
		logger.Debug("✅ Redis connected")
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Debug("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.RecordRepo = bookstoreRepo.NewOpenDataRepository(
		c.Config.OpenData.URL,
		c.Config.OpenData.Timeout,
		c.Metrics,
	)
	c.SelectionStore = bookstoreRepo.NewSelectionStore(c.Cache, c.Config.Session.TTL)
}

func (c *Container) initServices() {
	c.BookstoreService = bookstoreService.NewBookstoreService(c.RecordRepo)
}

func (c *Container) initHandlers() {
	c.BookstoreHandler = bookstoreHandler.NewBookstoreHandler(c.BookstoreService, c.SelectionStore)
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	logger.Debug("🧹 Cleaning up container resources...")

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("⚠️  Failed to close Redis", err)
		} else {
			logger.Debug("✅ Redis connections closed")
		}
	}
}
