package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/motherproperties/website-backend/config"
	"github.com/motherproperties/website-backend/handlers"
	"github.com/motherproperties/website-backend/logger"
	"github.com/motherproperties/website-backend/router"
	"github.com/motherproperties/website-backend/services"
)

// @title           Mother Properties API
// @version         1.0
// @description     Contact and catalogue intake backend for the Mother Properties marketing site.
// @BasePath        /v1
func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Redis client with TLS in production. Redis only backs
	// the rate limiter, so a failed connection does not stop startup.
	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.UseTLS {
		redisOptions.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(redisOptions)
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warnw("Failed to close Redis client", "error", err)
		}
	}()

	// Services
	emailService := services.NewEmailService(&cfg.Email)
	healthService := services.NewHealthService(redisClient, cfg.Server.Version)

	// Handlers
	deps := router.Dependencies{
		Config:           cfg,
		ContactHandler:   handlers.NewContactHandler(emailService, cfg),
		CatalogueHandler: handlers.NewCatalogueHandler(emailService, cfg),
		ContentHandler:   handlers.NewContentHandler(),
		HealthHandler:    handlers.NewHealthHandler(healthService),
		RedisClient:      redisClient,
		Logger:           log,
	}

	r := router.SetupRouter(deps)
	if len(cfg.Server.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
			log.Fatalf("Failed to set trusted proxies: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
}
