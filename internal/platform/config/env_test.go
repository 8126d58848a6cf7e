package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port       int           `env:"DOUBTSCLEAR_TEST_PORT" envDefault:"123"`
	SessionTTL time.Duration `env:"DOUBTSCLEAR_TEST_TTL" envDefault:"24h"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default ttl 24h, got %v", cfg.SessionTTL)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("DOUBTSCLEAR_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromMap(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{
		"DOUBTSCLEAR_TEST_PORT": "9090",
		"DOUBTSCLEAR_TEST_TTL":  "90m",
	})
	if err != nil {
		t.Fatalf("parse env from map: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.SessionTTL != 90*time.Minute {
		t.Fatalf("SessionTTL = %v, want 90m", cfg.SessionTTL)
	}
}

func TestParseEnvFromNilMapUsesDefaults(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env from nil map: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("Port = %d, want 123", cfg.Port)
	}
}
