package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr)
	}
	if cfg.StorePath != "" {
		t.Fatalf("store path should default to memory, got %q", cfg.StorePath)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.SimulatedLatency != 800*time.Millisecond {
		t.Fatalf("unexpected latency %v", cfg.SimulatedLatency)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_PATH", "/tmp/techtrove.db")
	t.Setenv("SIMULATED_LATENCY", "0s")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.StorePath != "/tmp/techtrove.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SimulatedLatency != 0 {
		t.Fatalf("latency override not applied: %v", cfg.SimulatedLatency)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}
