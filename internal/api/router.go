package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/contactly/clients-api/docs"
	"github.com/contactly/clients-api/internal/api/handler"
	"github.com/contactly/clients-api/internal/api/middleware"
	"github.com/contactly/clients-api/internal/core/domain"
	"github.com/contactly/clients-api/internal/core/service"
	"github.com/contactly/clients-api/internal/infrastructure/config"
	"github.com/contactly/clients-api/internal/infrastructure/imagehost"
	mongodb "github.com/contactly/clients-api/internal/infrastructure/db/mongo"
	redisdb "github.com/contactly/clients-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clients_api"))

	// --- Dependencies ---
	clientRepo := mongodb.NewClientRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	images := imagehost.NewCloudinary(imagehost.Config(cfg.Cloudinary))
	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	clientService := service.NewClientService(clientRepo, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userService := service.NewUserService(userRepo, images, log)

	clientHandler := handler.NewClientHandler(clientService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	rateLimit := middleware.RateLimit(limiter)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/refresh", authHandler.Refresh)

	// --- Client routes ---
	// The role check precedes the rate limiter, so a forbidden caller gets
	// 403 rather than consuming a throttle slot.
	clients := e.Group("/clients", authMiddleware)
	clients.GET("/", clientHandler.List, middleware.RBAC(domain.OpListClients), rateLimit)
	clients.GET("/birthday", clientHandler.Birthday, middleware.RBAC(domain.OpBirthdayClients))
	clients.GET("/:id", clientHandler.Get, middleware.RBAC(domain.OpGetClient))
	clients.POST("/", clientHandler.Create, middleware.RBAC(domain.OpCreateClient))
	clients.PUT("/:id", clientHandler.Update, middleware.RBAC(domain.OpUpdateClient))
	clients.DELETE("/:id", clientHandler.Delete, middleware.RBAC(domain.OpDeleteClient))

	// --- User routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("/me/", userHandler.Me)
	users.PATCH("/avatar", userHandler.UpdateAvatar)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
