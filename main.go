package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel_deal_sniper/internal/cache"
	"travel_deal_sniper/internal/cache/feedCache"
	"travel_deal_sniper/internal/config"
	"travel_deal_sniper/internal/dealFinder"
	"travel_deal_sniper/internal/fetcher"
	"travel_deal_sniper/internal/http"
	"travel_deal_sniper/internal/logger"
	"travel_deal_sniper/internal/models"
	"travel_deal_sniper/internal/parser"
	"travel_deal_sniper/internal/ratelimit"
)

func main() {
	cfg := config.Load()

	// Database connection for the logging sink
	db, err := logger.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to log database: %v", err)
	}
	defer db.Close()

	appLogger := logger.NewDatabaseLogger(db)
	defer appLogger.Close()

	startupCtx := logger.WithLogEvent(context.Background(), logger.NewInternalLogEvent())

	appLogger.LogInfo(startupCtx, logger.OpServerStart, "Starting Travel Deal Sniper API", map[string]interface{}{
		"version": "1.0.0",
		"config": map[string]interface{}{
			"port":       cfg.Port,
			"cache_type": cfg.CacheType,
			"cache_ttl":  cfg.CacheTTL.Seconds(),
		},
	})

	cacheService, err := initializeCache(cfg)
	if err != nil {
		appLogger.LogError(
			startupCtx,
			"cache_init",
			"",
			"Failed to initialize cache",
			err,
			models.LogSeverityHigh,
			nil,
		)
		log.Fatalf("Failed to initialize cache: %v", err)
	}

	titleParser := parser.NewTitleParser()
	feedFetcher := fetcher.NewRSSFetcher(time.Duration(cfg.FetchTimeoutSeconds) * time.Second)

	dealCache := feedCache.New(cacheService, feedFetcher, titleParser, appLogger, cfg.CacheTTL)

	rateLimiter := ratelimit.NewTwoTierRateLimiter(
		int64(cfg.GlobalRateLimitPerSec),
		int64(cfg.GlobalRateLimitPerSec),
		int64(cfg.PerIPRateLimitPerSec),
		int64(cfg.PerIPRateLimitPerSec),
	)

	dealService := dealFinder.NewService(dealCache, appLogger, models.Sources)

	handler := http.NewHandler(dealService, appLogger)

	addr := ":" + cfg.Port
	server := http.NewServer(
		addr,
		handler,
		appLogger,
		rateLimiter,
		cfg.ServerReadTimeout,
		cfg.ServerWriteTimeout,
	)

	go func() {
		if err := server.Start(); err != nil {
			appLogger.LogError(
				context.Background(),
				logger.OpServerStart,
				"",
				"Server failed to start",
				err,
				models.LogSeverityHigh,
				map[string]interface{}{"addr": addr},
			)
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	fmt.Printf("Travel Deal Sniper API server started on %s\n", addr)
	fmt.Println("Available endpoints:")
	fmt.Println("  GET  /health      - Health check")
	fmt.Println("  POST /find-deals  - Find deals matching preferences")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.LogError(
			ctx,
			logger.OpServerShutdown,
			"",
			"Server shutdown error",
			err,
			models.LogSeverityMedium,
			nil,
		)
		log.Printf("Server shutdown error: %v", err)
	} else {
		appLogger.LogInfo(ctx, logger.OpServerShutdown, "Server shutdown completed successfully", nil)
		fmt.Println("Server shutdown completed")
	}
}

func initializeCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.CacheType {
	case "redis":
		return cache.NewRedisCache(cfg.RedisURL)
	case "memory":
		return cache.NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.CacheType)
	}
}
