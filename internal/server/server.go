package server

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/config"
	"github.com/aureapp/aure-backend/internal/api"
	"github.com/aureapp/aure-backend/internal/middleware"
	"github.com/aureapp/aure-backend/internal/recommend"
	"github.com/aureapp/aure-backend/internal/router"
	"github.com/aureapp/aure-backend/internal/service"
)

// Server wires services, handlers and the HTTP listener together.
type Server struct {
	http *http.Server
}

// New builds the full application from its dependencies. The store may be nil
// when object storage is not configured; outfit images are then disabled.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store service.ObjectStore) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	perfumeService := service.NewPerfumeService(db)
	collectionService := service.NewCollectionService(db)
	preferenceService := service.NewPreferenceService(db)

	recConfig := recommend.DefaultConfig()

	var editorial service.CopyGenerator
	if cfg.AIAPIKey != "" {
		editorial = service.NewEditorialService(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel, redisClient)
	} else {
		log.Println("[Server] AI API key not set, editorial copy falls back to templates")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sessionService := service.NewSessionService(db, recConfig, editorial, rng)
	wearLogService := service.NewWearLogService(db, collectionService)
	vibeService := service.NewVibeService(db, store)
	outfitService := service.NewOutfitService(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel)
	weatherService := service.NewWeatherService(cfg.WeatherAPIURL, cfg.GeocodeAPIURL, recConfig, redisClient)

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		Perfume:    api.NewPerfumeHandler(perfumeService),
		Collection: api.NewCollectionHandler(collectionService),
		Session:    api.NewSessionHandler(sessionService),
		WearLog:    api.NewWearLogHandler(wearLogService),
		Vibe:       api.NewVibeHandler(vibeService),
		Preference: api.NewPreferenceHandler(preferenceService),
		Weather:    api.NewWeatherHandler(weatherService),
		Outfit:     api.NewOutfitHandler(outfitService, store),
	}

	var sessionLimiter, outfitLimiter *middleware.RateLimiter
	if redisClient != nil {
		sessionLimiter = middleware.NewSessionCreationRateLimiter(redisClient)
		outfitLimiter = middleware.NewOutfitAnalysisRateLimiter(redisClient)
	}

	engine := router.SetupRouter(db, handlers, authService, sessionLimiter, outfitLimiter)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start blocks serving HTTP until the listener fails or is shut down.
func (s *Server) Start() error {
	log.Printf("[Server] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
