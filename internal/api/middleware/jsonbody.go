package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/launchpad/backend/internal/domain"
)

const jsonBodyKey contextKey = "json_body"

// JSONBody decodes JSON request bodies before dispatch.
//
// Only requests declaring application/json and carrying a body are touched.
// Bodies over limit are rejected with 413. Malformed documents, and documents
// whose top level is not an object or array, are rejected with 400.
// The accepted document is stored on the context (see GetJSONBody) and the
// body is rewound so handlers can decode it into their own types.
func JSONBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !isJSON(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, http.StatusRequestEntityTooLarge, domain.ErrBodyTooLarge)
					return
				}
				writeError(w, http.StatusBadRequest, domain.ErrBodyRead)
				return
			}
			trimmed := bytes.TrimSpace(raw)
			if len(trimmed) == 0 {
				r.Body = io.NopCloser(bytes.NewReader(raw))
				next.ServeHTTP(w, r)
				return
			}
			if !json.Valid(raw) || (trimmed[0] != '{' && trimmed[0] != '[') {
				writeError(w, http.StatusBadRequest, domain.ErrInvalidJSON)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(raw))
			ctx := context.WithValue(r.Context(), jsonBodyKey, json.RawMessage(raw))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetJSONBody returns the document accepted by JSONBody, or nil when the
// request had no JSON body.
func GetJSONBody(ctx context.Context) json.RawMessage {
	v, _ := ctx.Value(jsonBodyKey).(json.RawMessage)
	return v
}

// isJSON matches application/json only; +json suffix types pass through.
func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json"
}

// writeError mirrors the handler package's error body so that rejections
// made before dispatch look the same as ones made by handlers.
func writeError(w http.ResponseWriter, status int, err error) {
	b, _ := json.Marshal(map[string]string{"error": err.Error()})
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
