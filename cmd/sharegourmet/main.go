package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/rest"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/app"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/config"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// add a waiting group for background storage and cache listeners
	wg := &sync.WaitGroup{}
	// get configuration
	cfg := config.NewDefaultConfiguration()
	if err := cfg.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	mainlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = mainlog.Sync()
	}()
	mainlog.Info("Build metadata",
		zap.String("version", valueOrNA(buildVersion)),
		zap.String("date", valueOrNA(buildDate)),
		zap.String("commit", valueOrNA(buildCommit)),
	)
	// initialize storage, cache, gateway and services
	a, err := app.InitApp(ctx, wg, cfg, mainlog)
	if err != nil {
		mainlog.Fatal("Initialization failed", zap.Error(err))
	}
	// initialize server
	server, err := rest.InitServer(cfg, a.Reconciler, a.Secretary, mainlog)
	if err != nil {
		mainlog.Fatal("Server initialization failed", zap.Error(err))
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-done
		mainlog.Info("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			mainlog.Error("Server shutdown failed", zap.Error(err))
		}
		cancel()
	}()
	// start up the server
	mainlog.Info("Server start attempted", zap.String("address", cfg.ServerAddress))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		mainlog.Fatal("Server failed", zap.Error(err))
	}
	// wait for goroutines started in InitApp to finish before exiting
	wg.Wait()
	mainlog.Info("Server shutdown succeeded")
}
