// Package inmemory provides a process-local shop detail cache.
package inmemory

import (
	"context"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/cache"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
)

// Check interface implementation explicitly
var (
	_ cache.ShopCache = (*Cache)(nil)
)

// Cache is a mutex-guarded LRU of canonical shops.
type Cache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// InitCache initializes a Cache holding at most capacity entries; zero means no limit.
func InitCache(capacity int) *Cache {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache{cache: lru.New(capacity)}
}

// Get returns the cached shop for id.
func (c *Cache) Get(_ context.Context, id string) (modelshop.Shop, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache.Get(id)
	if !ok {
		return modelshop.Shop{}, false
	}
	return v.(modelshop.Shop), true
}

// Put stores shop under id, evicting the least recently used entry when full.
func (c *Cache) Put(_ context.Context, id string, shop modelshop.Shop) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(id, shop)
}

// Len returns the number of cached shops.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}
