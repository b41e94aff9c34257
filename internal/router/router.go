package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/api"
	"github.com/aureapp/aure-backend/internal/database"
	"github.com/aureapp/aure-backend/internal/middleware"
)

// Handlers collects every route handler the router mounts.
type Handlers struct {
	Auth       *api.AuthHandler
	Perfume    *api.PerfumeHandler
	Collection *api.CollectionHandler
	Session    *api.SessionHandler
	WearLog    *api.WearLogHandler
	Vibe       *api.VibeHandler
	Preference *api.PreferenceHandler
	Weather    *api.WeatherHandler
	Outfit     *api.OutfitHandler
}

// SetupRouter configures the application routes
func SetupRouter(
	db *gorm.DB,
	handlers Handlers,
	validator middleware.TokenValidator,
	sessionLimiter *middleware.RateLimiter,
	outfitLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	handlers.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		handlers.Perfume.RegisterRoutes(protected)
		handlers.Collection.RegisterRoutes(protected)
		handlers.WearLog.RegisterRoutes(protected)
		handlers.Vibe.RegisterRoutes(protected)
		handlers.Preference.RegisterRoutes(protected)
		handlers.Weather.RegisterRoutes(protected)

		var sessionLimit gin.HandlerFunc
		if sessionLimiter != nil {
			sessionLimit = sessionLimiter.RateLimitMiddleware()
		}
		handlers.Session.RegisterRoutes(protected, sessionLimit)

		var outfitLimit gin.HandlerFunc
		if outfitLimiter != nil {
			outfitLimit = outfitLimiter.RateLimitMiddleware()
		}
		handlers.Outfit.RegisterRoutes(protected, outfitLimit)
	}

	return router
}
