package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/wavebatch/converter-api/api/cache"
	"github.com/wavebatch/converter-api/api/conversions"
	"github.com/wavebatch/converter-api/api/health"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/api/version"
	_ "github.com/wavebatch/converter-api/docs/swagger"
	conversionsService "github.com/wavebatch/converter-api/internal/services/conversions"
	"github.com/wavebatch/converter-api/internal/services/waveforms"
	"github.com/wavebatch/converter-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiters *RateLimiterStore) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// Database-backed services, initialized lazily so tests can inject fakes
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.ConversionService == nil {
			deps.ConversionService = conversionsService.NewService(
				conversionsService.NewRepository(deps.DB.DB))
		}
		if deps.WaveformService == nil {
			deps.WaveformService = waveforms.NewService(
				waveforms.NewRepository(deps.DB.DB))
		}
	}

	v1 := engine.Group("/api/v1")

	rps := config.GetInt("rate_limiting.requests_per_second")
	burst := config.GetInt("rate_limiting.burst")
	rateLimited := func(group *gin.RouterGroup) {
		if config.GetBool("rate_limiting.enabled") && limiters != nil {
			group.Use(limiters.Middleware(rps, burst))
		}
	}

	conversionsGroup := v1.Group("/conversions")
	rateLimited(conversionsGroup)
	conversions.RegisterRoutes(conversionsGroup, deps)

	cacheGroup := v1.Group("/cache")
	rateLimited(cacheGroup)
	cache.RegisterRoutes(cacheGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
