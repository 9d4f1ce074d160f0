// Package config holds runtime configuration parsed from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration. STORE_PATH selects the SQLite
// blob file; empty keeps all state in memory for the session.
type Config struct {
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	StorePath        string        `env:"STORE_PATH"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY" envDefault:"800ms"`
	CORSOrigins      []string      `env:"CORS_ORIGINS" envSeparator:","`
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
