package config_test

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/launchpad/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.MaxBodyBytes != 100<<10 {
		t.Fatalf("expected 100KiB body limit, got %d", cfg.MaxBodyBytes)
	}
	if !cfg.AllowsAnyOrigin() {
		t.Fatalf("expected permissive CORS by default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowCredentials {
		t.Fatal("expected credentials disabled by default")
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %s", cfg.LogLevel)
	}
	if cfg.DatabaseEnabled() {
		t.Fatal("expected no database by default")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")
	t.Setenv("SERVICE_NAME", "ai-service")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://localhost/app")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ServiceName != "ai-service" {
		t.Fatalf("expected service name ai-service, got %s", cfg.ServiceName)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
	if !cfg.DatabaseEnabled() {
		t.Fatal("expected database enabled")
	}
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("DB_MAX_CONNS", "many")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected default read timeout, got %s", cfg.ReadTimeout)
	}
	if cfg.DBMaxConns != 4 {
		t.Fatalf("expected default max conns, got %d", cfg.DBMaxConns)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"zero body limit", map[string]string{"MAX_BODY_BYTES": "0"}},
		{"min conns above max", map[string]string{"DB_MIN_CONNS": "10", "DB_MAX_CONNS": "2"}},
		{"max conns overflows int32", map[string]string{"DB_MAX_CONNS": "4294967297"}},
		{"zero max conns", map[string]string{"DB_MAX_CONNS": "0"}},
		{"negative min conns", map[string]string{"DB_MIN_CONNS": "-1"}},
		{"credentials with wildcard origin", map[string]string{"CORS_ALLOW_CREDENTIALS": "true"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := config.Load(); err == nil {
				t.Fatal("expected an error, got nil")
			}
		})
	}
}
