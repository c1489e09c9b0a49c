package waterjug

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/aretw0/waterjug/pkg/ports"
	"github.com/aretw0/waterjug/pkg/solver"
)

// Service is the high-level entry point for the water jug library.
// It wraps the solver with optional caching, lifecycle hooks and logging.
type Service struct {
	solver    *solver.Solver
	cache     ports.SolutionCache
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	maxStates int
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithCache memoizes successful solutions in the given cache.
func WithCache(c ports.SolutionCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMaxStates caps how many states a single search may expand.
func WithMaxStates(n int) Option {
	return func(s *Service) {
		s.maxStates = n
	}
}

// New creates a Service. Without options it behaves exactly like solver.Solve.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	s.solver = solver.New(solver.WithMaxStates(s.maxStates))
	return s
}

// Solve returns a shortest solution for p.
// Failures are domain.ErrInvalidInput, domain.ErrInfeasible or an error matching
// domain.ErrNoSolutionFound.
func (s *Service) Solve(ctx context.Context, p domain.Problem) (domain.Solution, error) {
	started := time.Now()
	event := &domain.SolveEvent{
		EventBase: domain.EventBase{Timestamp: started, Type: domain.EventSolveStart},
		Problem:   p,
	}
	if s.hooks.OnSolveStart != nil {
		s.hooks.OnSolveStart(ctx, event)
	}

	sol, err := s.solve(ctx, p, event)

	event.Type = domain.EventSolveFinish
	event.Duration = time.Since(started)
	event.Steps = len(sol)
	event.Err = err
	if s.hooks.OnSolveFinish != nil {
		s.hooks.OnSolveFinish(ctx, event)
	}

	s.log(ctx, event)
	return sol, err
}

func (s *Service) solve(ctx context.Context, p domain.Problem, event *domain.SolveEvent) (domain.Solution, error) {
	// Invalid problems never reach the cache backend.
	if err := solver.Validate(p); err != nil {
		return nil, err
	}

	if s.cache != nil {
		sol, err := s.cache.Get(ctx, p)
		if err == nil {
			event.CacheHit = true
			return sol, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "Solution cache read failed", "problem", p.String(), "error", err)
		}
	}

	sol, stats, err := s.solver.SolveContext(ctx, p)
	event.Explored = stats.Explored
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, p, sol); err != nil {
			s.logger.WarnContext(ctx, "Solution cache write failed", "problem", p.String(), "error", err)
		}
	}
	return sol, nil
}

func (s *Service) log(ctx context.Context, e *domain.SolveEvent) {
	attrs := []any{
		"problem", e.Problem.String(),
		"outcome", e.Outcome(),
		"steps", e.Steps,
		"explored", e.Explored,
		"cache_hit", e.CacheHit,
		"duration", e.Duration,
	}
	switch {
	case e.Err == nil || domain.IsUserError(e.Err):
		s.logger.DebugContext(ctx, "Solve finished", attrs...)
	case errors.Is(e.Err, domain.ErrSearchAborted):
		s.logger.WarnContext(ctx, "Solve aborted", append(attrs, "error", e.Err)...)
	default:
		// Feasibility and search disagree: a bug, not a bad request.
		s.logger.ErrorContext(ctx, "Solve found no solution for a feasible problem", append(attrs, "error", e.Err)...)
	}
}
