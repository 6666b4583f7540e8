package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; the database is optional.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Request bodies larger than this are rejected with 413.
	MaxBodyBytes int64

	// Cross-origin policy
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool
	CORSMaxAge           time.Duration

	// Service metadata, published on /version and /openapi.json
	ServiceName        string
	ServiceVersion     string
	ServiceDescription string

	LogLevel zapcore.Level

	// Database (optional). When DatabaseURL is empty the readiness probe
	// has nothing to check and always reports ready.
	DatabaseURL string
	DBMaxConns  int
	DBMinConns  int
}

func Load() (*Config, error) {
	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		MaxBodyBytes: int64(getInt("MAX_BODY_BYTES", 100<<10)),

		CORSAllowedOrigins:   getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CORSAllowCredentials: getBool("CORS_ALLOW_CREDENTIALS", false),
		CORSMaxAge:           getDuration("CORS_MAX_AGE", 12*time.Hour),

		ServiceName:        getEnv("SERVICE_NAME", "backend"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		ServiceDescription: getEnv("SERVICE_DESCRIPTION", "Backend service"),

		LogLevel: level,

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getInt("DB_MAX_CONNS", 4),
		DBMinConns:  getInt("DB_MIN_CONNS", 0),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	// The pool takes int32 counts.
	if c.DBMaxConns < 1 || c.DBMaxConns > math.MaxInt32 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and %d, got %d", math.MaxInt32, c.DBMaxConns)
	}
	if c.DBMinConns < 0 {
		return fmt.Errorf("DB_MIN_CONNS must not be negative, got %d", c.DBMinConns)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	// Browsers refuse credentialed responses carrying a wildcard origin.
	if c.CORSAllowCredentials && c.AllowsAnyOrigin() {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS requires explicit CORS_ALLOWED_ORIGINS, not *")
	}
	return nil
}

// AllowsAnyOrigin reports whether the cross-origin policy accepts every origin.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// DatabaseEnabled reports whether a database was configured for readiness checks.
func (c *Config) DatabaseEnabled() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

// getList splits a comma-separated variable, dropping blank entries.
func getList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
