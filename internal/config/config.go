// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/emberforge/charbuilder/internal/errors"
)

// Config holds the settings the CLI needs to wire the engine.
type Config struct {
	// RedisAddr is the endpoint of the character store.
	RedisAddr string `env:"CHARBUILDER_REDIS_ADDR" envDefault:"localhost:6379"`

	// CatalogueBaseURL points at the rules catalogue API.
	CatalogueBaseURL string `env:"CHARBUILDER_CATALOGUE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`

	// CatalogueTimeout bounds a single catalogue lookup.
	CatalogueTimeout time.Duration `env:"CHARBUILDER_CATALOGUE_TIMEOUT" envDefault:"30s"`

	// CatalogueCacheTTL controls how long catalogue responses are cached.
	CatalogueCacheTTL time.Duration `env:"CHARBUILDER_CATALOGUE_CACHE_TTL" envDefault:"24h"`
}

// Load parses configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
