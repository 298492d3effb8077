package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/app"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/config"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/logger"
)

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
	// initialize storage, cache, gateway and services
	a, err := app.InitApp(ctx, wg, cfg, mainlog)
	if err != nil {
		mainlog.Fatal("Initialization failed", zap.Error(err))
	}
	// initialize server
	server, err := grpc.InitServer(a.Reconciler, mainlog)
	if err != nil {
		mainlog.Fatal("Server initialization failed", zap.Error(err))
	}
	// set a listener for GRPC server
	listen, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		mainlog.Fatal("Listener failed", zap.Error(err))
	}
	// create a new GRPC server with logging and auth interceptors
	s := grpc.NewGRPCServer(server, a.Secretary, mainlog)
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-done
		mainlog.Info("Server shutdown attempted")
		s.GracefulStop()
		cancel()
	}()
	mainlog.Info("Server start attempted", zap.String("address", cfg.GRPCAddress))
	if err := s.Serve(listen); err != nil {
		mainlog.Fatal("Server failed", zap.Error(err))
	}
	wg.Wait()
	mainlog.Info("Server shutdown succeeded")
}
