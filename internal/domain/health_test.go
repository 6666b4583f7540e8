package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/launchpad/backend/internal/domain"
)

func TestNewHealthStatus_Encoding(t *testing.T) {
	b, err := json.Marshal(domain.NewHealthStatus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := string(b), `{"status":"Backend running"}`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
