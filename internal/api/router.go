package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/innovatube/video-api/docs"
	"github.com/innovatube/video-api/internal/api/handler"
	"github.com/innovatube/video-api/internal/api/middleware"
	"github.com/innovatube/video-api/internal/core/service"
	"github.com/innovatube/video-api/internal/infrastructure/config"
	"github.com/innovatube/video-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/innovatube/video-api/internal/infrastructure/db/redis"
	"github.com/innovatube/video-api/internal/infrastructure/youtube"
	"github.com/innovatube/video-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("innovatube"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)

	provider := youtube.NewClient(youtube.Config{
		APIKey:  cfg.YouTube.APIKey,
		BaseURL: cfg.YouTube.BaseURL,
	})
	cachedProvider := redisinfra.NewSearchCache(rdb, provider, cfg.YouTube.CacheTTL, log)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	favoriteService := service.NewFavoriteService(favoriteRepo, log)
	searchService := service.NewSearchService(cachedProvider, favoriteRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	searchHandler := handler.NewSearchHandler(searchService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.GET("/", welcome)
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Protected routes ---
	protected := e.Group("/api", authMiddleware)
	protected.GET("/search", searchHandler.Search)
	protected.GET("/favorites", favoriteHandler.List)
	protected.POST("/favorites", favoriteHandler.Add)
	protected.DELETE("/favorites/:videoId", favoriteHandler.Remove)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

func welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the InnovaTube API",
	})
}
