package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/launchpad/backend/internal/config"
	"github.com/launchpad/backend/internal/db"
)

func TestOpen_InvalidURL(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgres://%zz", DBMaxConns: 1}

	pool, err := db.Open(context.Background(), cfg)
	if err == nil {
		pool.Close()
		t.Fatal("expected parse error, got nil")
	}
}

// An unreachable database must not prevent startup; Ping reports it instead.
func TestOpen_UnreachableDatabase(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL: "postgres://app@127.0.0.1:1/app?connect_timeout=1",
		DBMaxConns:  1,
	}

	pool, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected pool without dialing, got %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err == nil {
		t.Fatal("expected ping to fail against a closed port")
	}
}
