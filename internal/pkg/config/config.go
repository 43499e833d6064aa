package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT      JWTConfig
	Database DatabaseConfig
}

type JWTConfig struct {
	Secret       string `env:"JWT_SECRET"`
	Algorithm    string `env:"JWT_ALG,           default=HS256"`
	ExpiresHours int    `env:"JWT_EXPIRES_HOURS, default=8"`
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL, default=postgres://localhost:5432/inventory"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=10"`
	MinConns int32  `env:"DB_MIN_CONNS, default=2"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
