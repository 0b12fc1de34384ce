// Package config loads runtime settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters.
type Config struct {
	DatabaseDSN string  `env:"DATABASE_DSN" envDefault:"lattemeister.db"`
	MediaDir    string  `env:"MEDIA_DIR" envDefault:"media"`
	LogLevel    int     `env:"LOG_LEVEL" envDefault:"0"`
	Latency     Latency `envPrefix:"LATENCY_"`
}

// Latency holds the simulated processing delays. They exist purely to
// exercise loading states; the defaults match the original application.
type Latency struct {
	Login  time.Duration `env:"LOGIN" envDefault:"1s"`
	Upload time.Duration `env:"UPLOAD" envDefault:"2s"`
	Reply  time.Duration `env:"REPLY" envDefault:"1500ms"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
