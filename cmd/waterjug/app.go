package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/internal/config"
	"github.com/aretw0/waterjug/internal/metrics"
	"github.com/aretw0/waterjug/pkg/adapters/memory"
	"github.com/aretw0/waterjug/pkg/adapters/redis"
	"github.com/aretw0/waterjug/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// buildService wires a Service from cfg. When reg is not nil the solver
// metrics are registered on it. The returned cleanup releases the cache.
func buildService(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*waterjug.Service, func() error, error) {
	cache, cleanup, err := buildCache(ctx, cfg.Cache)
	if err != nil {
		return nil, nil, err
	}

	opts := []waterjug.Option{
		waterjug.WithLogger(logger),
		waterjug.WithMaxStates(cfg.MaxStates),
	}
	if cache != nil {
		opts = append(opts, waterjug.WithCache(cache))
	}
	if reg != nil {
		opts = append(opts, waterjug.WithLifecycleHooks(metrics.New(reg).Hooks()))
	}
	return waterjug.New(opts...), cleanup, nil
}

func buildCache(ctx context.Context, c config.CacheConfig) (ports.SolutionCache, func() error, error) {
	noop := func() error { return nil }

	switch c.Backend {
	case config.CacheNone:
		return nil, noop, nil
	case config.CacheMemory:
		return memory.NewCache(c.Size), noop, nil
	case config.CacheRedis:
		cache := redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithPrefix(c.Redis.Prefix),
			redis.WithTTL(c.Redis.TTL),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			_ = cache.Close()
			return nil, nil, fmt.Errorf("redis cache at %s unreachable: %w", c.Redis.Addr, err)
		}
		logger.Info("Using Redis solution cache", "addr", c.Redis.Addr, "prefix", c.Redis.Prefix)
		return cache, cache.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidCacheBackend, c.Backend)
	}
}
