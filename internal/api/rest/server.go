// Package rest provides functionality for initializing a server for the shop service.
package rest

import (
	"expvar"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/config"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary"
)

var (
	serverStart = time.Now()
	publishOnce sync.Once
)

// uptime returns time in seconds since the server start-up.
func uptime() interface{} {
	return int64(time.Since(serverStart).Seconds())
}

// NewRouter wires handlers and middleware into a chi router.
func NewRouter(cfg *config.Config, rec reconciler.Reconciler, sec secretary.Secretary, log *zap.Logger) (chi.Router, error) {
	shopHandler, err := handlers.InitShopHandler(rec, log)
	if err != nil {
		return nil, err
	}
	authHandler := middleware.NewAuthHandler(sec, log)
	trustedNet := middleware.NewTrustedNetHandler(cfg.TrustedSubnet, cfg.TrustedProxy, log)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(authHandler.AuthHandle)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)

	r.Get("/ping", shopHandler.HandlePingDB())
	r.Post("/api/hotpepper", shopHandler.HandleSearch())
	r.Get("/api/shops/{id}", shopHandler.HandleGetShop())
	r.Get("/api/shops/{id}/memos", shopHandler.HandleListMemos())
	r.Post("/api/shops/{id}/memos", shopHandler.HandleAddMemo())
	r.Delete("/api/memos/{memoID}", shopHandler.HandleDeleteMemo())
	r.Get("/api/groups", shopHandler.HandleListGroups())
	r.Post("/api/groups", shopHandler.HandleCreateGroup())
	r.Get("/api/groups/{groupID}/shops", shopHandler.HandleListShared())
	r.Post("/api/groups/{groupID}/shops", shopHandler.HandleShare())
	r.Get("/api/private/shops", shopHandler.HandleListPrivate())
	r.Post("/api/private/shops", shopHandler.HandleSave())

	r.Group(func(r chi.Router) {
		r.Use(trustedNet.TrustedNetworkHandler)
		r.Post("/api/internal/backfill", shopHandler.HandleBackfill())
		r.Mount("/debug", chiMiddleware.Profiler())
	})
	publishOnce.Do(func() {
		expvar.Publish("system.uptime", expvar.Func(uptime))
	})
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, rec reconciler.Reconciler, sec secretary.Secretary, log *zap.Logger) (*http.Server, error) {
	r, err := NewRouter(cfg, rec, sec, log)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
