package ports

import (
	"context"
	"testing"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSolutionCacheContract runs a suite of tests to verify that a SolutionCache
// implementation adheres to the defined interface contract.
func RunSolutionCacheContract(t *testing.T, cache SolutionCache) {
	ctx := context.Background()
	problem := domain.Problem{CapacityX: 2, CapacityY: 100, Target: 96}
	solution := domain.Solution{
		{State: domain.State{X: 0, Y: 100}, Action: domain.ActionFillY},
		{State: domain.State{X: 2, Y: 98}, Action: domain.ActionPourYToX},
		{State: domain.State{X: 0, Y: 98}, Action: domain.ActionEmptyX},
		{State: domain.State{X: 2, Y: 96}, Action: domain.ActionPourYToX},
	}

	t.Run("Put and Get", func(t *testing.T) {
		err := cache.Put(ctx, problem, solution)
		require.NoError(t, err, "Put should not return error")

		loaded, err := cache.Get(ctx, problem)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, solution, loaded)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, domain.Problem{CapacityX: 7, CapacityY: 11, Target: 999})
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Empty Solution", func(t *testing.T) {
		zero := domain.Problem{CapacityX: 3, CapacityY: 5, Target: 0}
		require.NoError(t, cache.Put(ctx, zero, domain.Solution{}))

		loaded, err := cache.Get(ctx, zero)
		require.NoError(t, err)
		assert.NotNil(t, loaded, "an empty solution must not come back as a miss")
		assert.Empty(t, loaded)
	})

	t.Run("Overwrite", func(t *testing.T) {
		p := domain.Problem{CapacityX: 3, CapacityY: 5, Target: 5}
		require.NoError(t, cache.Put(ctx, p, solution[:1]))
		replacement := domain.Solution{{State: domain.State{X: 0, Y: 5}, Action: domain.ActionFillY}}
		require.NoError(t, cache.Put(ctx, p, replacement))

		loaded, err := cache.Get(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, replacement, loaded)
	})

	t.Run("Isolation", func(t *testing.T) {
		p := domain.Problem{CapacityX: 4, CapacityY: 9, Target: 9}
		original := domain.Solution{{State: domain.State{X: 0, Y: 9}, Action: domain.ActionFillY}}
		require.NoError(t, cache.Put(ctx, p, original))

		loaded, err := cache.Get(ctx, p)
		require.NoError(t, err)
		loaded[0].Action = domain.ActionEmptyY

		again, err := cache.Get(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, domain.ActionFillY, again[0].Action, "callers must not mutate cached entries")
	})
}
