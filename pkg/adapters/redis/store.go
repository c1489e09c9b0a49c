package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/waterjug/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the cache.
const DefaultPrefix = "waterjug:solution:"

// Cache implements ports.SolutionCache using Redis, so replicas behind a load
// balancer share solved problems.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached solutions.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached solutions.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(p domain.Problem) string {
	return fmt.Sprintf("%s%d:%d:%d", c.prefix, p.CapacityX, p.CapacityY, p.Target)
}

// Get retrieves the solution from Redis.
func (c *Cache) Get(ctx context.Context, p domain.Problem) (domain.Solution, error) {
	val, err := c.client.Get(ctx, c.key(p)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	sol := domain.Solution{}
	if err := json.Unmarshal(val, &sol); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}
	return sol, nil
}

// Put stores the solution as JSON.
func (c *Cache) Put(ctx context.Context, p domain.Problem, sol domain.Solution) error {
	if sol == nil {
		sol = domain.Solution{}
	}
	data, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}

	if err := c.client.Set(ctx, c.key(p), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Ping checks connectivity to the Redis server.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
