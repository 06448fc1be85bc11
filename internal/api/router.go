package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sweetshop/sweet-inventory/internal/api/handler"
	"github.com/sweetshop/sweet-inventory/internal/api/middleware"
	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Log       zerolog.Logger
	Auth      ports.AuthService
	Tokens    ports.TokenVerifier
	Users     ports.UserRepository
	Sweets    ports.SweetService
	Inventory ports.InventoryService
	Movements ports.MovementService

	// Limiter guards /api/auth. Nil disables rate limiting.
	Limiter middleware.Limiter
	// Checks are run by the readiness probe, keyed by dependency name.
	Checks      map[string]handler.Check
	CORSOrigins []string

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	registerer, gatherer := d.Registerer, d.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "sweetshop",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints ---
	health := handler.NewHealthHandler(d.Checks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticate := middleware.Authenticate(d.Tokens, d.Users)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	auth := e.Group("/api/auth")
	if d.Limiter != nil {
		auth.Use(middleware.RateLimit(d.Limiter, d.Log))
	}
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticate)

	// --- Sweet routes ---
	sweetHandler := handler.NewSweetHandler(d.Sweets)
	inventoryHandler := handler.NewInventoryHandler(d.Inventory)
	movementHandler := handler.NewMovementHandler(d.Movements)
	can := middleware.Authorize

	sweets := e.Group("/api/sweets", authenticate)
	sweets.GET("", sweetHandler.List, can(domain.PermSweetRead))
	sweets.GET("/search", sweetHandler.Search, can(domain.PermSweetRead))
	sweets.POST("", sweetHandler.Create, can(domain.PermSweetWrite))
	sweets.GET("/:id", sweetHandler.Get, can(domain.PermSweetRead))
	sweets.PUT("/:id", sweetHandler.Update, can(domain.PermSweetWrite))
	sweets.DELETE("/:id", sweetHandler.Delete, can(domain.PermSweetDelete))
	sweets.POST("/:id/purchase", inventoryHandler.Purchase, can(domain.PermSweetPurchase))
	sweets.POST("/:id/restock", inventoryHandler.Restock, can(domain.PermSweetRestock))
	sweets.GET("/:id/movements", movementHandler.List, can(domain.PermMovementRead))

	return e
}
