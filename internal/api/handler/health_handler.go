package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	apimw "github.com/launchpad/backend/internal/api/middleware"
	"github.com/launchpad/backend/internal/domain"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and version endpoints.
type HealthHandler struct {
	db     Pinger
	info   domain.ServiceInfo
	logger *zap.Logger
}

// NewHealthHandler builds the handler. db may be nil when no database is
// configured; readiness then has nothing to check.
func NewHealthHandler(db Pinger, info domain.ServiceInfo, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, info: info, logger: logger}
}

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.HealthStatus
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.NewHealthStatus())
}

// Ready handles GET /ready
//
// @Summary  Readiness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.ReadinessStatus
// @Failure  503  {object}  map[string]string
// @Router   /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed",
				zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
				zap.Error(err),
			)
			mapError(w, fmt.Errorf("%w: database not reachable", domain.ErrNotReady))
			return
		}
	}
	respondJSON(w, http.StatusOK, domain.ReadinessStatus{Status: "ready"})
}

// Version handles GET /version
//
// @Summary  Service name and version
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.ServiceInfo
// @Router   /version [get]
func (h *HealthHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.info)
}
