package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/traintrack/training-api/docs"
	"github.com/traintrack/training-api/internal/api/handler"
	"github.com/traintrack/training-api/internal/api/middleware"
	"github.com/traintrack/training-api/internal/core/ports"
	"github.com/traintrack/training-api/internal/core/service"
	"github.com/traintrack/training-api/internal/infrastructure/config"
	pgstore "github.com/traintrack/training-api/internal/infrastructure/db/postgres"
	redisstore "github.com/traintrack/training-api/internal/infrastructure/db/redis"
	"github.com/traintrack/training-api/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, coach ports.CoachClient, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("traintrack"))
	// Credentialed CORS: echo back the caller's origin, as the browser client
	// sends the auth cookie cross-origin in development setups.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOriginFunc:  func(origin string) (bool, error) { return true, nil },
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	issuer := token.NewIssuer([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	secureCookie := cfg.CookieSecure()

	users := pgstore.NewUserRepository(db)
	sessions := pgstore.NewSessionRepository(db)
	trainings := pgstore.NewTrainingRepository(db)
	throttle := redisstore.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts)

	authService := service.NewAuthService(users, sessions, throttle, issuer, cfg.Auth.BcryptCost, log)
	settingsService := service.NewSettingsService(users, log)
	trainingService := service.NewTrainingService(trainings, coach, cfg.OpenAI.Timeout, log)

	authHandler := handler.NewAuthHandler(authService, int(issuer.TTL().Seconds()), secureCookie)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	pages := handler.NewPageHandler()

	// --- Page routes behind the access gate ---
	gate := middleware.Gate(issuer, secureCookie)

	authPages := e.Group("/auth", gate)
	authPages.GET("/login", pages.Login)
	authPages.GET("/register", pages.Register)

	dashboard := e.Group("/dashboard", gate)
	dashboard.GET("", pages.Dashboard)
	dashboard.GET("/*", pages.Dashboard)

	// --- Auth API (no token required) ---
	authAPI := e.Group("/api/auth")
	authAPI.POST("/register", authHandler.Register)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)

	// --- Protected API ---
	api := e.Group("/api", middleware.RequireAuth(issuer))
	api.GET("/settings", settingsHandler.Get)
	api.PUT("/settings", settingsHandler.Update)
	api.POST("/chat", trainingHandler.Chat)
	api.GET("/trainings", trainingHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
