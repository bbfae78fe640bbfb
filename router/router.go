package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/motherproperties/website-backend/config"
	"github.com/motherproperties/website-backend/handlers"
	"github.com/motherproperties/website-backend/middleware"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config           *config.Config
	ContactHandler   *handlers.ContactHandler
	CatalogueHandler *handlers.CatalogueHandler
	ContentHandler   *handlers.ContentHandler
	HealthHandler    *handlers.HealthHandler
	RedisClient      *redis.Client
	Logger           *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The two intake endpoints share one rate limit bucket per client IP.
	intakeLimit := middleware.IntakeRateLimiter(
		deps.RedisClient,
		deps.Config.RateLimit.IntakeRequestsPerMinute,
		time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
	)

	// Versioned API Group (v1)
	v1 := r.Group("/v1")
	{
		intake := v1.Group("")
		intake.Use(intakeLimit)
		{
			intake.POST("/contact", deps.ContactHandler.SubmitContact)
			intake.POST("/catalogue-download", deps.CatalogueHandler.RegisterDownload)
		}

		v1.GET("/site", deps.ContentHandler.GetSite)
		v1.GET("/projects", deps.ContentHandler.ListProjects)
		v1.GET("/projects/:slug", deps.ContentHandler.GetProject)
	}

	// Legacy aliases kept for the deployed frontend, which still posts
	// to the unversioned /api paths.
	api := r.Group("/api")
	api.Use(intakeLimit)
	{
		api.POST("/contact", deps.ContactHandler.SubmitContact)
		api.POST("/catalogue-download", deps.CatalogueHandler.RegisterDownload)
	}

	return r
}
