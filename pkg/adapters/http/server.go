package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const invalidInputMessage = "Invalid input: Values must be positive integers."

// Solver defines the interface for the water jug core.
type Solver interface {
	Solve(ctx context.Context, p domain.Problem) (domain.Solution, error)
}

// Server implements ServerInterface
type Server struct {
	Solver Solver
	Logger *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the handler built by NewHandler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger  *slog.Logger
	metrics http.Handler
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithMetrics mounts h (typically promhttp.Handler) on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(c *handlerConfig) {
		c.metrics = h
	}
}

// NewHandler creates a new HTTP handler for the solver.
// It fails only if the embedded OpenAPI document is broken.
func NewHandler(solver Solver, opts ...Option) (http.Handler, error) {
	cfg := &handlerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc, "/api/water-jug", cfg.logger)
	if err != nil {
		return nil, err
	}

	server := &Server{
		Solver: solver,
		Logger: cfg.logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			cfg.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics)
	}

	handler := HandlerFromMux(server, r, server.bindError, validator.Middleware)
	return enableCORS(handler), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Water Jug Challenge API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
        defaultModelsExpandDepth: 2,
        defaultModelExpandDepth: 2,
    });
    };
</script>
</body>
</html>
`

// SolveWaterJug handles the POST /api/water-jug request.
func (s *Server) SolveWaterJug(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := decodeBody(r.Body, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidInputMessage)
		s.Logger.Debug("Solve: Invalid request body", "error", err)
		return
	}

	s.solve(w, r, domain.Problem{
		CapacityX: body.XCapacity,
		CapacityY: body.YCapacity,
		Target:    body.TargetAmount,
	})
}

// SolveWaterJugQuery handles the GET /api/water-jug request.
func (s *Server) SolveWaterJugQuery(w http.ResponseWriter, r *http.Request, params SolveWaterJugQueryParams) {
	s.solve(w, r, domain.Problem{
		CapacityX: params.XCapacity,
		CapacityY: params.YCapacity,
		Target:    params.TargetAmount,
	})
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request, p domain.Problem) {
	steps, err := s.Solver.Solve(r.Context(), p)
	if err != nil {
		if domain.IsUserError(err) {
			writeError(w, http.StatusBadRequest, domain.Message(err))
			return
		}
		writeError(w, http.StatusInternalServerError, domain.Message(err))
		if !errors.Is(err, context.Canceled) {
			s.Logger.Error("Solve failed", "problem", p.String(), "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{Steps: mapStepsFromDomain(steps)})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "waterjug-http",
		"version":     strings.TrimSpace(waterjug.Version),
		"api_version": apiVersion,
	})
}

func (s *Server) bindError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, invalidInputMessage)
	s.Logger.Warn("Solve: Invalid query parameters", "error", err)
}

// -- Helpers --

// decodeBody reads exactly one JSON value from body into v.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func mapStepsFromDomain(steps domain.Solution) []Step {
	res := make([]Step, len(steps))
	for i, s := range steps {
		res[i] = Step{
			XAmount: s.X,
			YAmount: s.Y,
			Action:  string(s.Action),
		}
	}
	return res
}
