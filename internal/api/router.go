package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/launchpad/backend/internal/api/handler"
	apimw "github.com/launchpad/backend/internal/api/middleware"
	"github.com/launchpad/backend/internal/metrics"
)

// Options carries the router's collaborators and policy knobs.
type Options struct {
	Health  *handler.HealthHandler
	OpenAPI *handler.OpenAPIHandler

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	CORS         apimw.CORSOptions
	MaxBodyBytes int64

	Logger *zap.Logger
}

// quietPaths are polled by orchestrators and scrapers; their access logs
// drop to debug level.
var quietPaths = []string{"/health", "/ready", "/metrics"}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)                      // recover panics, return 500
	r.Use(chimw.RealIP)                         // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(opts.MaxBodyBytes)) // hard cap on any request body
	r.Use(apimw.CorrelationID)                  // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(opts.Logger, quietPaths...))
	r.Use(apimw.Instrument(opts.Metrics))
	r.Use(apimw.CORS(opts.CORS))
	r.Use(apimw.JSONBody(opts.MaxBodyBytes))

	// --- routes ---
	r.Get("/health", opts.Health.Health)
	r.Get("/ready", opts.Health.Ready)
	r.Get("/version", opts.Health.Version)
	r.Get("/openapi.json", opts.OpenAPI.Document)

	// Raw Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	return r
}
