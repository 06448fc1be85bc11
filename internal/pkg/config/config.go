package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT, default=5000"`
	Env       string        `env:"ENV, default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	JWTTTL    time.Duration `env:"JWT_TTL, default=168h"`
	// Comma separated list of origins allowed by CORS.
	CORSOrigins     []string `env:"CORS_ORIGINS, default=*"`
	MovementWorkers int      `env:"MOVEMENT_WORKERS, default=4"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB, default=sweetshop"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Enabled bool   `env:"REDIS_ENABLED, default=true"`
	Addr    string `env:"REDIS_ADDR, default=localhost:6379"`
	DB      int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=20"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
}

// SeedConfig is only read by cmd/seed.
type SeedConfig struct {
	AdminEmail       string `env:"ADMIN_EMAIL, default=admin@sweetshop.com"`
	AdminPassword    string `env:"ADMIN_PASSWORD, default=Admin@12345"`
	DemoUserEmail    string `env:"DEMO_USER_EMAIL, default=user@sweetshop.com"`
	DemoUserPassword string `env:"DEMO_USER_PASSWORD, default=User@12345"`
}

// IsDevelopment reports whether the service runs with developer ergonomics
// such as console logging.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads a .env file when one exists and then resolves the configuration
// from the process environment. Variables already set win over the file.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.MovementWorkers < 1 {
		return errors.New("MOVEMENT_WORKERS must be at least 1")
	}
	if c.Redis.Enabled {
		if c.RateLimit.Requests < 1 {
			return errors.New("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.RateLimit.Window <= 0 {
			return errors.New("RATE_LIMIT_WINDOW must be positive")
		}
	}
	return nil
}
