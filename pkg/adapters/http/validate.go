package http

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

// requestValidator checks requests against the OpenAPI document before they
// reach a handler, so handlers only ever see well-formed input.
type requestValidator struct {
	routes map[string]*routers.Route // keyed by method
	logger *slog.Logger
}

func newRequestValidator(doc *openapi3.T, path string, logger *slog.Logger) (*requestValidator, error) {
	pathItem := doc.Paths.Find(path)
	if pathItem == nil {
		return nil, fmt.Errorf("path %s missing from OpenAPI document", path)
	}

	v := &requestValidator{
		routes: make(map[string]*routers.Route),
		logger: logger,
	}
	for method, op := range pathItem.Operations() {
		v.routes[method] = &routers.Route{
			Spec:      doc,
			Path:      path,
			PathItem:  pathItem,
			Method:    method,
			Operation: op,
		}
	}
	return v, nil
}

// Middleware rejects requests that do not match their operation.
func (v *requestValidator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := v.routes[r.Method]
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if route.Operation.RequestBody != nil && !isJSON(r.Header.Get("Content-Type")) {
			writeError(w, http.StatusUnsupportedMediaType, "Unsupported content type: expected application/json.")
			v.logger.Warn("Solve: Unsupported content type", "content_type", r.Header.Get("Content-Type"))
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request: r,
			Route:   route,
			Options: &openapi3filter.Options{
				MultiError: true,
			},
		}
		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			writeError(w, http.StatusBadRequest, invalidInputMessage)
			v.logger.Debug("Solve: Request rejected by schema", "method", r.Method, "reason", summarize(err))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// summarize keeps the first line of a validation error; kin-openapi appends
// the offending schema and value on the following lines.
func summarize(err error) string {
	first, _, _ := strings.Cut(err.Error(), "\n")
	const maxLen = 200
	if len(first) > maxLen {
		first = first[:maxLen] + "..."
	}
	return first
}
