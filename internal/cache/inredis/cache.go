// Package inredis provides a shop detail cache shared between service instances through Redis.
package inredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/cache"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
)

const keyPrefix = "shop:detail:"

// Check interface implementation explicitly
var (
	_ cache.ShopCache = (*Cache)(nil)
)

// Cache stores canonical shops as JSON values with a TTL.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// InitCache creates a Redis client and verifies connectivity.
func InitCache(ctx context.Context, opts *redis.Options, ttl time.Duration, log *zap.Logger) (*Cache, error) {
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Cache{rdb: rdb, ttl: ttl, log: log}, nil
}

// Get returns the cached shop for id. Redis failures are logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, id string) (modelshop.Shop, bool) {
	val, err := c.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return modelshop.Shop{}, false
	}
	if err != nil {
		c.log.Warn("Reading shop from cache", zap.String("id", id), zap.Error(err))
		return modelshop.Shop{}, false
	}
	var shop modelshop.Shop
	if err := json.Unmarshal(val, &shop); err != nil {
		c.log.Warn("Decoding cached shop", zap.String("id", id), zap.Error(err))
		return modelshop.Shop{}, false
	}
	return shop, true
}

// Put stores shop under id with the configured TTL; zero TTL keeps the entry until evicted by Redis.
func (c *Cache) Put(ctx context.Context, id string, shop modelshop.Shop) {
	val, err := json.Marshal(shop)
	if err != nil {
		c.log.Warn("Encoding shop for cache", zap.String("id", id), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key(id), val, c.ttl).Err(); err != nil {
		c.log.Warn("Writing shop to cache", zap.String("id", id), zap.Error(err))
	}
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

func key(id string) string {
	return keyPrefix + id
}
