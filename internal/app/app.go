// Package app assembles storage, cache, gateway and services from configuration.
package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/cache"
	cacheInMemory "github.com/danilovkiri/dk_go_sharegourmet/internal/cache/inmemory"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/cache/inredis"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/config"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler/v1"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/searcher/v1"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary/v1"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/storage/inpsql"
)

// App holds the wired dependencies of a running binary.
type App struct {
	Config     *config.Config
	Storage    storage.ShopStorage
	Cache      cache.ShopCache
	Searcher   *searcher.Searcher
	Reconciler *reconciler.Reconciler
	Secretary  *secretary.Secretary
}

// InitApp builds every dependency described by cfg. Background resources (the PSQL pool, the
// Redis client) are released once ctx is cancelled; each registers itself on wg.
func InitApp(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, log *zap.Logger) (*App, error) {
	s, err := searcher.InitSearcher(cfg, log)
	if err != nil {
		return nil, err
	}
	// switch between "inmemory" and "inpsql" storage modules
	var st storage.ShopStorage
	switch cfg.DatabaseDSN {
	case "":
		log.Warn("DATABASE_DSN is empty, falling back to in-memory storage")
		st = inmemory.InitStorage(log)
	default:
		wg.Add(1)
		st, err = inpsql.InitStorage(ctx, wg, cfg.DatabaseDSN, log)
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	// switch between "inmemory" and "inredis" cache modules
	var c cache.ShopCache
	switch cfg.RedisAddr {
	case "":
		c = cacheInMemory.InitCache(cfg.CacheCapacity)
	default:
		rc, err := inredis.InitCache(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.CacheTTL, log)
		if err != nil {
			return nil, err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-ctx.Done()
			if err := rc.Close(); err != nil {
				log.Warn("Redis client close failed", zap.Error(err))
				return
			}
			log.Info("Redis client closed successfully")
		}()
		c = rc
	}
	rec, err := reconciler.InitReconciler(st, s, c, log)
	if err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, every bearer token will be rejected")
	}
	return &App{
		Config:     cfg,
		Storage:    st,
		Cache:      c,
		Searcher:   s,
		Reconciler: rec,
		Secretary:  secretary.NewSecretaryService(cfg.JWTSecret),
	}, nil
}
