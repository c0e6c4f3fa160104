package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=1h"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:4200"`

	Postgres PostgresConfig
	Redis    RedisConfig
	YouTube  YouTubeConfig
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_URL, default=postgres://localhost:5432/innovatube"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type YouTubeConfig struct {
	APIKey   string        `env:"YOUTUBE_API_KEY"`
	BaseURL  string        `env:"YOUTUBE_BASE_URL, default=https://www.googleapis.com/youtube/v3"`
	CacheTTL time.Duration `env:"SEARCH_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT secret is a hard startup failure: without it every issued
// token would be unverifiable.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
