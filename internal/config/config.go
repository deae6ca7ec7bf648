package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide configuration. It is loaded exactly once at
// startup and passed down by constructor injection; request-handling code never
// reads the environment directly.
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR"      envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	MongoURI      string        `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string        `env:"MONGO_DATABASE" envDefault:"devlink"`
	MongoTimeout  time.Duration `env:"MONGO_TIMEOUT"  envDefault:"10s"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"100h"`

	GitHubBaseURL string        `env:"GITHUB_BASE_URL" envDefault:"https://api.github.com"`
	GitHubTimeout time.Duration `env:"GITHUB_TIMEOUT"  envDefault:"10s"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
