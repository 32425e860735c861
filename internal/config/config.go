package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the poem service. Environment
// variables are parsed from the POEM_SERVICE_ prefix.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"4000"`

	// Session token signing secret. The default exists for local
	// development only.
	JWTSecret string `envconfig:"JWT_SECRET" default:"qwerty"`

	// Validity window of issued session tokens, in minutes.
	TokenTTLMinutes int `envconfig:"TOKEN_TTL_MINUTES" default:"30"`

	// Origin the web front end is served from; CORS allows it with
	// credentials so the session cookie survives cross-origin requests.
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`

	// SeedDemo loads the fixture catalog at startup.
	SeedDemo bool `envconfig:"SEED_DEMO" default:"true"`
}

// New creates a new Config by parsing environment variables.
// Example: POEM_SERVICE_HTTP_PORT, POEM_SERVICE_JWT_SECRET.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("POEM_SERVICE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.TokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %d", cfg.TokenTTLMinutes)
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Int("token_ttl_minutes", cfg.TokenTTLMinutes).
		Str("cors_origin", cfg.CORSOrigin).
		Bool("seed_demo", cfg.SeedDemo).
		Msg("Configuration loaded")

	return &cfg, nil
}

// TokenTTL returns the token validity window as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// HTTPAddr returns the HTTP server listen address.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
