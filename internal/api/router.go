package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/api/handler"
	"github.com/stocktrack/inventory-api/internal/api/middleware"
	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/service"
	"github.com/stocktrack/inventory-api/internal/core/token"
	"github.com/stocktrack/inventory-api/internal/infrastructure/db/postgres"
	healthhandlers "github.com/stocktrack/inventory-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, codec *token.Codec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(pool)
	authService := service.NewAuthService(authRepo, codec, log)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := postgres.NewProductRepository(pool)
	productService := service.NewProductService(productRepo, log)
	productHandler := handler.NewProductHandler(productService)

	authMiddleware := middleware.Auth(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Product routes (authenticated; writes are admin only) ---
	products := e.Group("/products", authMiddleware)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, adminOnly)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(pool)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
