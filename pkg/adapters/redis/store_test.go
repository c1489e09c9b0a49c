package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/waterjug/pkg/adapters/redis"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/aretw0/waterjug/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Contract(t *testing.T) {
	// Setup miniredis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	cache := redis.NewFromClient(client)
	ports.RunSolutionCacheContract(t, cache)
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	cache := redis.NewFromClient(client, redis.WithTTL(time.Minute), redis.WithPrefix("test:"))

	ctx := context.Background()
	p := domain.Problem{CapacityX: 3, CapacityY: 5, Target: 5}
	sol := domain.Solution{{State: domain.State{X: 0, Y: 5}, Action: domain.ActionFillY}}
	require.NoError(t, cache.Put(ctx, p, sol))

	assert.True(t, mr.Exists("test:3:5:5"), "key should use the configured prefix")
	assert.Equal(t, time.Minute, mr.TTL("test:3:5:5"))

	mr.FastForward(2 * time.Minute)

	_, err = cache.Get(ctx, p)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_StoredFormat(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.New(mr.Addr(), "", 0)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Ping(ctx))

	p := domain.Problem{CapacityX: 3, CapacityY: 5, Target: 3}
	require.NoError(t, cache.Put(ctx, p, domain.Solution{{State: domain.State{X: 3}, Action: domain.ActionFillX}}))

	raw, err := mr.Get(redis.DefaultPrefix + "3:5:3")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"xAmount":3,"yAmount":0,"action":"Fill X jug"}]`, raw)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.New(mr.Addr(), "", 0)
	defer cache.Close()

	require.NoError(t, mr.Set(redis.DefaultPrefix+"1:1:1", "not json"))
	_, err = cache.Get(context.Background(), domain.Problem{CapacityX: 1, CapacityY: 1, Target: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}
