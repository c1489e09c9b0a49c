package http

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var specYAML []byte

// SolveRequest is the body of POST /api/water-jug.
type SolveRequest struct {
	XCapacity    int `json:"xCapacity"`
	YCapacity    int `json:"yCapacity"`
	TargetAmount int `json:"targetAmount"`
}

// SolveWaterJugQueryParams are the query parameters of GET /api/water-jug.
type SolveWaterJugQueryParams struct {
	XCapacity    int `form:"xCapacity" json:"xCapacity"`
	YCapacity    int `form:"yCapacity" json:"yCapacity"`
	TargetAmount int `form:"targetAmount" json:"targetAmount"`
}

// Step is one action of a solution as exposed over HTTP.
type Step struct {
	XAmount int    `json:"xAmount"`
	YAmount int    `json:"yAmount"`
	Action  string `json:"action"`
}

// SolveResponse is the 200 response of both solve operations.
type SolveResponse struct {
	Steps []Step `json:"steps"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/water-jug)
	SolveWaterJug(w http.ResponseWriter, r *http.Request)
	// (GET /api/water-jug)
	SolveWaterJugQuery(w http.ResponseWriter, r *http.Request, params SolveWaterJugQueryParams)
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /info)
	GetInfo(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts raw requests into typed handler calls.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// SolveWaterJug operation middleware
func (siw *ServerInterfaceWrapper) SolveWaterJug(w http.ResponseWriter, r *http.Request) {
	siw.Handler.SolveWaterJug(w, r)
}

// SolveWaterJugQuery binds the query parameters before calling the handler.
func (siw *ServerInterfaceWrapper) SolveWaterJugQuery(w http.ResponseWriter, r *http.Request) {
	var params SolveWaterJugQueryParams
	query := r.URL.Query()

	bindings := []struct {
		name string
		dest *int
	}{
		{"xCapacity", &params.XCapacity},
		{"yCapacity", &params.YCapacity},
		{"targetAmount", &params.TargetAmount},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, true, b.name, query, b.dest); err != nil {
			siw.ErrorHandlerFunc(w, r, fmt.Errorf("invalid format for parameter %s: %w", b.name, err))
			return
		}
	}

	siw.Handler.SolveWaterJugQuery(w, r, params)
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetHealth(w, r)
}

// GetInfo operation middleware
func (siw *ServerInterfaceWrapper) GetInfo(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetInfo(w, r)
}

// HandlerFromMux registers every operation of si on r.
// Operations under /api are validated against the OpenAPI document first.
func HandlerFromMux(si ServerInterface, r chi.Router, errorHandler func(w http.ResponseWriter, r *http.Request, err error), validate func(http.Handler) http.Handler) http.Handler {
	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: errorHandler,
	}

	r.Group(func(r chi.Router) {
		r.Use(validate)
		r.Post("/api/water-jug", wrapper.SolveWaterJug)
		r.Get("/api/water-jug", wrapper.SolveWaterJugQuery)
	})
	r.Get("/health", wrapper.GetHealth)
	r.Get("/info", wrapper.GetInfo)

	return r
}

var loadSwagger = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
})

// GetSwagger returns the parsed OpenAPI document served by this package.
func GetSwagger() (*openapi3.T, error) {
	return loadSwagger()
}

func rawSpec() ([]byte, error) {
	return specYAML, nil
}
