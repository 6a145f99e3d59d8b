// Package api wires the HTTP surface: routes, middleware and the error
// handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/genvoice/casetrack/docs"
	"github.com/genvoice/casetrack/internal/api/handler"
	"github.com/genvoice/casetrack/internal/api/middleware"
	"github.com/genvoice/casetrack/internal/api/session"
	"github.com/genvoice/casetrack/internal/core/service"
	"github.com/genvoice/casetrack/internal/infrastructure/config"
	mongodb "github.com/genvoice/casetrack/internal/infrastructure/db/mongo"
	redisdb "github.com/genvoice/casetrack/internal/infrastructure/db/redis"
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
	e.Use(echoprometheus.NewMiddleware("casetrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	caseRepo := mongodb.NewCaseRepository(db)
	sessions := session.NewManager(redisdb.NewSessionStore(rdb), cfg.Session.Secret, cfg.Session.TTL)

	userService := service.NewUserService(userRepo, log)
	caseService := service.NewCaseService(caseRepo, log)

	authHandler := handler.NewAuthHandler(userService, sessions)
	caseHandler := handler.NewCaseHandler(caseService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	e.Use(middleware.LoadIdentity(sessions, userRepo))
	requireAuth := middleware.RequireAuth()

	// --- Routes ---
	e.GET("/", healthHandler.Home)

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout, requireAuth)

	// Promote/demote re-authenticate from the request body, so they carry no
	// session guard.
	e.POST("/promote", authHandler.Promote)
	e.POST("/demote", authHandler.Demote)

	e.GET("/cases", caseHandler.List, requireAuth)
	e.POST("/case", caseHandler.Upsert, requireAuth)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
