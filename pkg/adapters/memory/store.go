package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/waterjug/pkg/domain"
)

// DefaultCapacity is the number of entries kept by NewCache when size <= 0.
const DefaultCapacity = 1024

// Cache implements ports.SolutionCache in memory.
// Safe for concurrent use. When full, the oldest entry is evicted.
type Cache struct {
	data  map[domain.Problem]domain.Solution
	order []domain.Problem
	size  int
	mu    sync.RWMutex
}

// NewCache creates a new in-memory cache holding at most size entries.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCapacity
	}
	return &Cache{
		data: make(map[domain.Problem]domain.Solution),
		size: size,
	}
}

// Get returns a copy of the cached solution.
func (c *Cache) Get(ctx context.Context, p domain.Problem) (domain.Solution, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sol, ok := c.data[p]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return slices.Clone(sol), nil
}

// Put stores a copy of sol so later caller mutations don't leak in.
func (c *Cache) Put(ctx context.Context, p domain.Problem, sol domain.Solution) error {
	copied := slices.Clone(sol)
	if copied == nil {
		copied = domain.Solution{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[p]; !ok {
		if len(c.order) >= c.size {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.data, oldest)
		}
		c.order = append(c.order, p)
	}
	c.data[p] = copied
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
