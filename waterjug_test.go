package waterjug_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/pkg/adapters/memory"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingCache simulates an unreachable cache backend.
type failingCache struct {
	puts int
}

func (f *failingCache) Get(ctx context.Context, p domain.Problem) (domain.Solution, error) {
	return nil, errors.New("connection refused")
}

func (f *failingCache) Put(ctx context.Context, p domain.Problem, sol domain.Solution) error {
	f.puts++
	return errors.New("connection refused")
}

func TestService_Solve(t *testing.T) {
	svc := waterjug.New()

	steps, err := svc.Solve(context.Background(), domain.Problem{CapacityX: 2, CapacityY: 100, Target: 96})
	require.NoError(t, err)
	assert.Len(t, steps, 4)

	_, err = svc.Solve(context.Background(), domain.Problem{CapacityX: 0, CapacityY: 5, Target: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Solve(context.Background(), domain.Problem{CapacityX: 3, CapacityY: 5, Target: 7})
	assert.ErrorIs(t, err, domain.ErrInfeasible)
}

func TestService_CachesSolutions(t *testing.T) {
	cache := memory.NewCache(0)
	var events []domain.SolveEvent
	svc := waterjug.New(
		waterjug.WithCache(cache),
		waterjug.WithLifecycleHooks(domain.LifecycleHooks{
			OnSolveFinish: func(ctx context.Context, e *domain.SolveEvent) {
				events = append(events, *e)
			},
		}),
	)

	p := domain.Problem{CapacityX: 3, CapacityY: 5, Target: 4}
	first, err := svc.Solve(context.Background(), p)
	require.NoError(t, err)
	second, err := svc.Solve(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	require.Len(t, events, 2)
	assert.False(t, events[0].CacheHit)
	assert.Positive(t, events[0].Explored)
	assert.True(t, events[1].CacheHit)
	assert.Zero(t, events[1].Explored)
	assert.Equal(t, 6, events[1].Steps)
}

func TestService_DoesNotCacheFailures(t *testing.T) {
	cache := memory.NewCache(0)
	svc := waterjug.New(waterjug.WithCache(cache))

	_, err := svc.Solve(context.Background(), domain.Problem{CapacityX: 2, CapacityY: 6, Target: 5})
	assert.ErrorIs(t, err, domain.ErrInfeasible)
	_, err = svc.Solve(context.Background(), domain.Problem{CapacityX: -1, CapacityY: 6, Target: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, cache.Len())
}

func TestService_CacheFailureIsBypassed(t *testing.T) {
	cache := &failingCache{}
	svc := waterjug.New(waterjug.WithCache(cache))

	steps, err := svc.Solve(context.Background(), domain.Problem{CapacityX: 3, CapacityY: 5, Target: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, steps)
	assert.Equal(t, 1, cache.puts)
}

func TestService_HookOutcomes(t *testing.T) {
	outcomes := map[string]int{}
	starts := 0
	svc := waterjug.New(
		waterjug.WithMaxStates(1),
		waterjug.WithLifecycleHooks(domain.LifecycleHooks{
			OnSolveStart: func(ctx context.Context, e *domain.SolveEvent) {
				assert.Equal(t, domain.EventSolveStart, e.Type)
				starts++
			},
			OnSolveFinish: func(ctx context.Context, e *domain.SolveEvent) {
				assert.Equal(t, domain.EventSolveFinish, e.Type)
				outcomes[e.Outcome()]++
			},
		}),
	)

	ctx := context.Background()
	_, _ = svc.Solve(ctx, domain.Problem{CapacityX: 3, CapacityY: 5, Target: 0})
	_, _ = svc.Solve(ctx, domain.Problem{CapacityX: 0, CapacityY: 5, Target: 3})
	_, _ = svc.Solve(ctx, domain.Problem{CapacityX: 2, CapacityY: 6, Target: 5})
	_, err := svc.Solve(ctx, domain.Problem{CapacityX: 3, CapacityY: 5, Target: 4})
	assert.ErrorIs(t, err, domain.ErrNoSolutionFound)

	assert.Equal(t, 4, starts)
	assert.Equal(t, map[string]int{
		"solved":        1,
		"invalid_input": 1,
		"infeasible":    1,
		"no_solution":   1,
	}, outcomes)
}
