package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store backends selectable via the STORE variable.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	Store     string        `env:"STORE,     default=memory"`
	WebDir    string        `env:"WEB_DIR,   default=web"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	AI        AIConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=farm_market"`
}

// RedisConfig is optional: an empty Addr disables Redis and the rate limiter
// falls back to its in-process implementation.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// RateLimitConfig caps requests per client IP within a fixed window. Auth
// routes get a tighter budget than the general API.
type RateLimitConfig struct {
	Window    time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
	APILimit  int           `env:"RATE_LIMIT_API,    default=100"`
	AuthLimit int           `env:"RATE_LIMIT_AUTH,   default=10"`
}

// AIConfig points the proxy layer at the external providers. Empty URLs are
// valid: the advisor then serves fallback content only.
type AIConfig struct {
	PlantIDURL string        `env:"PLANT_ID_URL"`
	PlantIDKey string        `env:"PLANT_ID_KEY"`
	AdviceURL  string        `env:"ADVICE_URL"`
	AdviceKey  string        `env:"ADVICE_KEY"`
	Timeout    time.Duration `env:"AI_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Store != StoreMemory && cfg.Store != StoreMongo {
		return nil, fmt.Errorf("config: unknown store %q", cfg.Store)
	}
	return &cfg, nil
}
