package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/agrilink/farm-market/docs"
	"github.com/agrilink/farm-market/internal/api/handler"
	"github.com/agrilink/farm-market/internal/api/middleware"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// Deps bundles everything the router needs. Mongo and Redis are nil when the
// deployment runs purely in-memory.
type Deps struct {
	Env       string
	JWTSecret string
	WebDir    string
	Logger    zerolog.Logger

	Auth     ports.AuthService
	Catalog  ports.CatalogService
	Advisor  ports.AdvisorService
	Users    ports.UserRepository
	Products ports.ProductRepository
	Activity ports.ActivityRepository
	Recorder handler.ActivityRecorder

	AuthLimiter middleware.Limiter
	APILimiter  middleware.Limiter

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("farmmarket"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Recorder)
	productHandler := handler.NewProductHandler(deps.Catalog, deps.Recorder)
	userHandler := handler.NewUserHandler(deps.Users)
	aiHandler := handler.NewAIHandler(deps.Advisor, deps.Recorder)
	statsHandler := handler.NewStatsHandler(deps.Users, deps.Products, deps.Activity)
	healthHandler := handler.NewHealthHandler(deps.Env, deps.Users, deps.Products)
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	authRequired := middleware.Auth(deps.JWTSecret)
	sellerOnly := middleware.RequireUserType("seller", "both")

	// --- API routes ---
	apiGroup := e.Group("/api", middleware.RateLimit(deps.APILimiter, "api", deps.Logger))

	// Auth routes carry a tighter budget on top of the general one.
	authGroup := apiGroup.Group("/auth", middleware.RateLimit(deps.AuthLimiter, "auth", deps.Logger))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	apiGroup.GET("/products", productHandler.List)
	apiGroup.GET("/products/:id", productHandler.Get)
	apiGroup.POST("/products", productHandler.Create, authRequired, sellerOnly)

	apiGroup.GET("/users", userHandler.List)
	apiGroup.GET("/stats", statsHandler.Stats)

	apiGroup.POST("/ai/detect-disease", aiHandler.DetectDisease)
	apiGroup.POST("/ai/farming-advice", aiHandler.FarmingAdvice)

	// --- Ops routes (no rate limit) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Browser client ---
	if deps.WebDir != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  deps.WebDir,
			Index: "index.html",
			Skipper: func(c echo.Context) bool {
				p := c.Request().URL.Path
				return strings.HasPrefix(p, "/api") ||
					strings.HasPrefix(p, "/health") ||
					strings.HasPrefix(p, "/metrics") ||
					strings.HasPrefix(p, "/swagger")
			},
		}))
	}

	return e
}
