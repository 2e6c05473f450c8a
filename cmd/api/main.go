// ABOUTME: Main entry point for the feed reader API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedreader-api/api"
	"feedreader-api/api/handlers"
	"feedreader-api/core/ingest"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/reader"
	"feedreader-api/core/subscriptions"
	"feedreader-api/infrastructure/cache/memory"
	"feedreader-api/infrastructure/cache/redis"
	stdhttp "feedreader-api/infrastructure/http/standard"
	logruslogger "feedreader-api/infrastructure/logger/logrus"
	"feedreader-api/infrastructure/storage/sqlite"
	"feedreader-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Feed Reader API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"sqlite":     cfg.Storage.SQLitePath,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create storage
	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	ingestService := ingest.NewService(deps)
	subscriptionService := subscriptions.NewService(deps, ingestService, subscriptions.Storage{
		Feeds:    store.Feeds,
		Articles: store.Articles,
		Tags:     store.Tags,
	})
	readerService := reader.NewService(cache, logger)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:         logger,
		RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst: cfg.RateLimit.Burst,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	// The preview path goes through the subscription service so it gets
	// the same hard parse deadline as Subscribe and Refresh.
	handlers.NewFeedHandler(subscriptionService).RegisterRoutes(humaAPI)
	handlers.NewSubscriptionHandler(subscriptionService).RegisterRoutes(humaAPI)
	handlers.NewArticleHandler(subscriptionService).RegisterRoutes(humaAPI)
	handlers.NewTagHandler(subscriptionService).RegisterRoutes(humaAPI)
	handlers.NewDiscoverHandler(httpClient).RegisterRoutes(humaAPI)
	handlers.NewReaderHandler(readerService).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
