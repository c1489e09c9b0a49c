package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

const (
	// ToolSolve is the name of the solving tool.
	ToolSolve = "solve_water_jug"
	// ResourceActions lists the action labels a solution may contain.
	ResourceActions = "waterjug://actions"
)

// SolveArgs are the arguments of the solve_water_jug tool.
type SolveArgs struct {
	XCapacity    int `mapstructure:"x_capacity"`
	YCapacity    int `mapstructure:"y_capacity"`
	TargetAmount int `mapstructure:"target_amount"`
}

// SolveResult aligns with the HTTP response body.
type SolveResult struct {
	Steps []domain.Step `json:"steps" jsonschema_description:"Ordered actions from two empty jugs to the target"`
}

// Solver defines the interface required by the MCP server.
type Solver interface {
	Solve(ctx context.Context, p domain.Problem) (domain.Solution, error)
}

// Server wraps a Solver and exposes it as an MCP Server.
type Server struct {
	solver    Solver
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver Solver, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		solver:    solver,
		logger:    logger,
		mcpServer: server.NewMCPServer("waterjug-mcp", strings.TrimSpace(waterjug.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: solve_water_jug
	solveTool := mcp.NewTool(ToolSolve,
		mcp.WithDescription("Find the shortest sequence of fill, empty and pour actions that leaves the target amount in either jug."),
		mcp.WithNumber("x_capacity", mcp.Required(), mcp.Description("Capacity of jug X (positive integer)")),
		mcp.WithNumber("y_capacity", mcp.Required(), mcp.Description("Capacity of jug Y (positive integer)")),
		mcp.WithNumber("target_amount", mcp.Required(), mcp.Description("Amount to measure (non-negative integer)")),
		mcp.WithOutputSchema[SolveResult](),
	)
	s.mcpServer.AddTool(solveTool, s.handleSolve)
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decodeArgs(request.GetArguments())
	if err != nil {
		s.logger.Warn("MCP Solve: Arguments rejected", "error", err)
		return mcp.NewToolResultError(domain.Message(domain.ErrInvalidInput)), nil
	}

	steps, err := s.solver.Solve(ctx, domain.Problem{
		CapacityX: args.XCapacity,
		CapacityY: args.YCapacity,
		Target:    args.TargetAmount,
	})
	if err != nil {
		if !domain.IsUserError(err) && !errors.Is(err, context.Canceled) {
			s.logger.Error("MCP Solve: Search failed", "error", err)
		}
		return mcp.NewToolResultError(domain.Message(err)), nil
	}

	if steps == nil {
		steps = domain.Solution{}
	}
	result := SolveResult{Steps: steps}
	text, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultStructured(result, string(text)), nil
}

// decodeArgs maps raw tool arguments onto SolveArgs. Every argument is
// required and must be a whole number.
func decodeArgs(raw map[string]any) (SolveArgs, error) {
	var args SolveArgs
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  wholeNumberHook,
		ErrorUnused: true,
		Metadata:    &md,
		Result:      &args,
	})
	if err != nil {
		return args, err
	}
	if err := decoder.Decode(raw); err != nil {
		return args, err
	}
	if len(md.Unset) > 0 {
		return args, fmt.Errorf("missing arguments: %s", strings.Join(md.Unset, ", "))
	}
	return args, nil
}

func wholeNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%v is not a whole number", data)
		}
		// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
		if f < math.MinInt || f >= math.MaxInt {
			return nil, fmt.Errorf("%v is out of range", data)
		}
		return int(f), nil
	case reflect.String:
		return nil, fmt.Errorf("%q is not a number", data)
	}
	return data, nil
}

func (s *Server) registerResources() {
	// EXPOSE: waterjug://actions
	s.mcpServer.AddResource(mcp.NewResource(ResourceActions, "Water Jug Actions",
		mcp.WithResourceDescription("The six action labels, in the order the search tries them."),
		mcp.WithMIMEType("application/json"),
	), s.handleActions)
}

func (s *Server) handleActions(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(domain.Actions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode actions: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ResourceActions,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
