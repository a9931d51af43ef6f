package api

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tacocloud/tacocloud/internal/api/handler"
	"github.com/tacocloud/tacocloud/internal/api/middleware"
	"github.com/tacocloud/tacocloud/internal/api/view"
	"github.com/tacocloud/tacocloud/internal/core/domain"
	"github.com/tacocloud/tacocloud/internal/core/ports"
	"github.com/tacocloud/tacocloud/internal/core/service"
	"github.com/tacocloud/tacocloud/internal/infrastructure/db/sqlite"
)

// guardRules is the enumerated access-control table: first match wins,
// unmatched paths are public.
var guardRules = []middleware.Rule{
	{Pattern: "/design", Role: domain.RoleUser},
	{Pattern: "/orders", Role: domain.RoleUser},
	{Pattern: "/*", Role: ""},
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, carts ports.CartStore, jwtSecret string, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("tacocloud"))
	e.Use(middleware.Auth(jwtSecret))
	e.Use(middleware.Guard(guardRules))

	// --- Dependencies ---
	ingredientRepo := sqlite.NewIngredientRepository(db)
	tacoRepo := sqlite.NewTacoRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	designService := service.NewDesignService(ingredientRepo, tacoRepo, carts, log)
	orderService := service.NewOrderService(orderRepo, carts, log)

	authHandler := handler.NewAuthHandler(authService)
	designHandler := handler.NewDesignHandler(designService, authService)
	orderHandler := handler.NewOrderHandler(orderService, designService)
	homeHandler := handler.NewHomeHandler()

	// --- Routes ---
	e.GET("/", homeHandler.Home)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)

	e.GET("/design", designHandler.Form)
	e.POST("/design", designHandler.Submit)
	e.GET("/orders", orderHandler.History)
	e.GET("/orders/current", orderHandler.Current)
	e.POST("/orders", orderHandler.Checkout)

	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
