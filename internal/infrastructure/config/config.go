package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
}

type AuthConfig struct {
	// JWTSecret has no default on purpose: a process without an injected
	// secret must refuse to start.
	JWTSecret        string        `env:"JWT_SECRET, required"`
	TokenTTL         time.Duration `env:"TOKEN_TTL, default=168h"`
	BcryptCost       int           `env:"BCRYPT_COST, default=12"`
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=10"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN, default=host=localhost user=traintrack dbname=traintrack password=traintrack sslmode=disable"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type OpenAIConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	Model   string        `env:"OPENAI_MODEL,   default=gpt-4"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// CookieSecure reports whether auth cookies must carry the Secure flag.
// Only local development may run over plain HTTP.
func (c *Config) CookieSecure() bool {
	return c.Env != "development"
}
