package ports

import (
	"context"

	"github.com/aretw0/waterjug/pkg/domain"
)

// SolutionCache memoizes solutions by problem.
// Solutions are deterministic, so a cached entry never goes stale; expiry is
// only a memory bound.
type SolutionCache interface {
	// Get returns the cached solution for p.
	// Returns domain.ErrCacheMiss if no entry exists.
	Get(ctx context.Context, p domain.Problem) (domain.Solution, error)

	// Put stores the solution for p, replacing any previous entry.
	Put(ctx context.Context, p domain.Problem, sol domain.Solution) error
}
