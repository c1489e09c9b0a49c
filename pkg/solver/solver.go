package solver

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/waterjug/pkg/domain"
)

// cancelCheckInterval is how many expansions happen between context checks.
const cancelCheckInterval = 1024

// Stats reports the work done by one search.
type Stats struct {
	// Explored is the number of states expanded.
	Explored int
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxStates caps the number of states a search may expand.
// Zero or a negative value means no cap.
func WithMaxStates(n int) Option {
	return func(s *Solver) {
		s.maxStates = n
	}
}

// Solver runs bounded searches. The zero value is an unbounded solver.
type Solver struct {
	maxStates int
}

// New creates a Solver with the given options.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve returns a shortest solution for the given capacities and target.
// The error is one of domain.ErrInvalidInput, domain.ErrInfeasible or
// domain.ErrNoSolutionFound.
func Solve(capacityX, capacityY, target int) (domain.Solution, error) {
	sol, _, err := New().SolveContext(context.Background(), domain.Problem{
		CapacityX: capacityX,
		CapacityY: capacityY,
		Target:    target,
	})
	return sol, err
}

// SolveContext solves p, stopping early when ctx is done or the state cap is hit.
// An early stop returns an error matching both domain.ErrSearchAborted and
// domain.ErrNoSolutionFound.
func (s *Solver) SolveContext(ctx context.Context, p domain.Problem) (domain.Solution, Stats, error) {
	if err := Validate(p); err != nil {
		return nil, Stats{}, err
	}
	if !Feasible(p.CapacityX, p.CapacityY, p.Target) {
		return nil, Stats{}, domain.ErrInfeasible
	}
	if p.Target == 0 {
		return domain.Solution{}, Stats{}, nil
	}
	return s.search(ctx, p)
}

// backRef records how a state was first discovered.
type backRef struct {
	from   domain.State
	action domain.Action
}

func (s *Solver) search(ctx context.Context, p domain.Problem) (domain.Solution, Stats, error) {
	var stats Stats
	start := domain.State{}

	// A state is enqueued only on its first discovery, so its back-reference
	// is the one whose path a queue of full paths would have dequeued first.
	discovered := map[domain.State]backRef{start: {}}
	queue := []domain.State{start}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.Reached(p.Target) {
			return trace(discovered, start, cur), stats, nil
		}

		if stats.Explored%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, fmt.Errorf("%w after %d states: %w", domain.ErrSearchAborted, stats.Explored, err)
			}
		}
		if s.maxStates > 0 && stats.Explored >= s.maxStates {
			return nil, stats, fmt.Errorf("%w: state limit %d reached", domain.ErrSearchAborted, s.maxStates)
		}
		stats.Explored++

		for _, next := range Successors(cur, p.CapacityX, p.CapacityY) {
			if _, seen := discovered[next.State]; seen {
				continue
			}
			discovered[next.State] = backRef{from: cur, action: next.Action}
			queue = append(queue, next.State)
		}
	}

	return nil, stats, domain.ErrNoSolutionFound
}

// Successors returns the steps reachable from s by one action, in canonical
// action order, omitting actions that leave s unchanged.
func Successors(s domain.State, capacityX, capacityY int) []domain.Step {
	steps := make([]domain.Step, 0, len(domain.Actions))
	for _, a := range domain.Actions {
		next := a.Apply(s, capacityX, capacityY)
		if next == s {
			continue
		}
		steps = append(steps, domain.Step{State: next, Action: a})
	}
	return steps
}

func trace(discovered map[domain.State]backRef, start, goal domain.State) domain.Solution {
	path := domain.Solution{}
	for cur := goal; cur != start; {
		ref := discovered[cur]
		path = append(path, domain.Step{State: cur, Action: ref.action})
		cur = ref.from
	}
	slices.Reverse(path)
	return path
}
