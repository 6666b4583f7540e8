package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIHandler serves the pre-rendered OpenAPI document.
type OpenAPIHandler struct {
	doc []byte
}

// NewOpenAPIHandler renders doc once; the document never changes at runtime.
func NewOpenAPIHandler(doc *openapi3.T) (*OpenAPIHandler, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render openapi document: %w", err)
	}
	return &OpenAPIHandler{doc: b}, nil
}

// Document handles GET /openapi.json
func (h *OpenAPIHandler) Document(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.doc)
}
