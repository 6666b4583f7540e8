package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
)

// CORSOptions configures the cross-origin policy.
type CORSOptions struct {
	AllowedOrigins   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// CORS returns the cross-origin middleware. With the defaults it accepts any
// origin, method and request header. Preflight requests are answered here and
// never reach the router.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{CorrelationHeader},
		AllowCredentials: opts.AllowCredentials,
		MaxAge:           int(opts.MaxAge / time.Second),
	})
}
