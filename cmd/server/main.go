package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrilink/farm-market/internal/api"
	"github.com/agrilink/farm-market/internal/api/middleware"
	"github.com/agrilink/farm-market/internal/core/ports"
	"github.com/agrilink/farm-market/internal/core/service"
	"github.com/agrilink/farm-market/internal/infrastructure/agroai"
	"github.com/agrilink/farm-market/internal/infrastructure/config"
	"github.com/agrilink/farm-market/internal/infrastructure/db/memory"
	mongostore "github.com/agrilink/farm-market/internal/infrastructure/db/mongo"
	redisstore "github.com/agrilink/farm-market/internal/infrastructure/db/redis"
	"github.com/agrilink/farm-market/internal/infrastructure/queue"
	"github.com/agrilink/farm-market/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// @title        Farm Market API
// @version      1.0
// @description  Farming marketplace with token auth, a product catalog and AI-assisted advice.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- Stores ---
	var (
		users    ports.UserRepository
		products ports.ProductRepository
		activity ports.ActivityRepository
		mongoDB  *mongo.Database
	)
	switch cfg.Store {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		userRepo := mongostore.NewUserRepository(db)
		productRepo := mongostore.NewProductRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("user indexes failed")
		}
		if err := productRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("product indexes failed")
		}

		users = userRepo
		products = productRepo
		activity = mongostore.NewActivityRepository(db)
		mongoDB = db
	default:
		users = memory.NewUserRepository()
		products = memory.NewProductRepository()
		activity = memory.NewActivityRepository()
	}

	// --- Rate limiting ---
	var (
		redisClient *goredis.Client
		apiLimiter  middleware.Limiter
		authLimiter middleware.Limiter
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = redisClient.Close()
		}()
		apiLimiter = redisstore.NewRateLimiter(redisClient, cfg.RateLimit.Window, cfg.RateLimit.APILimit)
		authLimiter = redisstore.NewRateLimiter(redisClient, cfg.RateLimit.Window, cfg.RateLimit.AuthLimit)
	} else {
		apiLimiter = middleware.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.APILimit)
		authLimiter = middleware.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.AuthLimit)
	}

	// --- Services ---
	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(products, users, log)
	advisorService := service.NewAdvisorService(
		agroai.NewPlantIDClient(cfg.AI.PlantIDURL, cfg.AI.PlantIDKey, cfg.AI.Timeout),
		agroai.NewAdviceClient(cfg.AI.AdviceURL, cfg.AI.AdviceKey, cfg.AI.Timeout),
		log,
	)

	dispatcher := queue.NewDispatcher(0, service.NewActivityService(activity, log), log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Env:         cfg.Env,
		JWTSecret:   cfg.JWTSecret,
		WebDir:      cfg.WebDir,
		Logger:      log,
		Auth:        authService,
		Catalog:     catalogService,
		Advisor:     advisorService,
		Users:       users,
		Products:    products,
		Activity:    activity,
		Recorder:    dispatcher,
		AuthLimiter: authLimiter,
		APILimiter:  apiLimiter,
		Mongo:       mongoDB,
		Redis:       redisClient,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("store", cfg.Store).Msg("farm market listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
