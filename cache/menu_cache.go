package menu_cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/longpt2111/food-app/models"
	"golang.org/x/sync/singleflight"
)

const (
	TTL = 5 * time.Minute

	// loadTimeout bounds a shared load, which outlives the caller that started it.
	loadTimeout = 30 * time.Second
)

// LoadFunc reads the full menu from the backing store.
type LoadFunc func(ctx context.Context) ([]models.FoodItem, error)

type entry struct {
	items     []models.FoodItem
	fetchedAt time.Time
}

// Cache holds the whole menu for TTL. Concurrent misses share a single load.
type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	mu    sync.RWMutex
	entry *entry
	group singleflight.Group
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached menu, calling load on a miss. Concurrent callers share
// one load that is detached from any single caller's cancellation; each caller
// stops waiting when its own ctx is done.
func (c *Cache) Get(ctx context.Context, load LoadFunc) ([]models.FoodItem, error) {
	if items, ok := c.Peek(); ok {
		return items, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan("menu", func() (interface{}, error) {
		if items, ok := c.Peek(); ok {
			return items, nil
		}
		ctx, cancel := context.WithTimeout(loadCtx, loadTimeout)
		defer cancel()
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(items)
		return items, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]models.FoodItem)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Peek returns the cached menu if it is still fresh.
func (c *Cache) Peek() ([]models.FoodItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry != nil && c.now().Sub(c.entry.fetchedAt) < c.ttl {
		return slices.Clone(c.entry.items), true
	}
	return nil, false
}

func (c *Cache) Set(items []models.FoodItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &entry{items: slices.Clone(items), fetchedAt: c.now()}
}

// Invalidate drops the cached menu (call after any item is created).
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
