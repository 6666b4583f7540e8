package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CorrelationHeader carries the per-request trace identifier.
const CorrelationHeader = "X-Correlation-ID"

// maxCorrelationIDLen bounds caller-supplied IDs before they reach logs.
const maxCorrelationIDLen = 128

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// CorrelationID takes the caller's X-Correlation-ID (or X-Request-ID, which
// most load balancers set) and generates a UUID when neither is usable.
// The ID is stored on the request context and echoed on the response.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationHeader)
		if id == "" {
			id = r.Header.Get("X-Request-ID")
		}
		if id == "" || len(id) > maxCorrelationIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
	})
}

// WithCorrelationID returns a copy of ctx carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// GetCorrelationID retrieves the correlation ID stored by the middleware.
// Returns an empty string if the middleware was not applied.
func GetCorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(correlationIDKey).(string)
	return v
}
