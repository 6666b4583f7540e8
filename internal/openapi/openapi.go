// Package openapi describes the service's HTTP surface as an OpenAPI 3 document.
package openapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Info is the service metadata placed in the document's info object.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Build returns a validated document for the probe and info routes.
func Build(ctx context.Context, info Info) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/health", &openapi3.PathItem{
				Get: operation("health", "Liveness probe",
					jsonResponse(http.StatusOK, "Process is accepting requests", statusSchema()),
				),
			}),
			openapi3.WithPath("/ready", &openapi3.PathItem{
				Get: operation("ready", "Readiness probe",
					jsonResponse(http.StatusOK, "Dependencies are reachable", statusSchema()),
					jsonResponse(http.StatusServiceUnavailable, "A dependency is unreachable", errorSchema()),
				),
			}),
			openapi3.WithPath("/version", &openapi3.PathItem{
				Get: operation("version", "Service name and version",
					jsonResponse(http.StatusOK, "Build identity", serviceInfoSchema()),
				),
			}),
		),
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

func operation(id, summary string, responses ...openapi3.NewResponsesOption) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: id,
		Summary:     summary,
		Tags:        []string{"system"},
		Responses:   openapi3.NewResponses(responses...),
	}
}

func jsonResponse(status int, description string, schema *openapi3.Schema) openapi3.NewResponsesOption {
	resp := openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchema(schema)
	return openapi3.WithStatus(status, &openapi3.ResponseRef{Value: resp})
}

// stringObject builds an object schema whose listed properties are all
// required strings.
func stringObject(props ...string) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	for _, p := range props {
		s.WithProperty(p, openapi3.NewStringSchema())
	}
	s.Required = props
	return s
}

func statusSchema() *openapi3.Schema      { return stringObject("status") }
func errorSchema() *openapi3.Schema       { return stringObject("error") }
func serviceInfoSchema() *openapi3.Schema { return stringObject("service", "version") }
