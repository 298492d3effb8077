// Package grpc serves ShopService over GRPC with JSON-encoded messages.
package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/handlers"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/interceptors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/shopservice"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary"
)

var (
	serverStart = time.Now()
	_           shopservice.ShopServiceServer = (*ShopServer)(nil)
)

// uptime returns time in seconds since the server start-up.
func uptime() int64 {
	return int64(time.Since(serverStart).Seconds())
}

// ShopServer defines server methods and attributes.
type ShopServer struct {
	grpcHandler *handlers.GRPCHandler
}

// InitServer returns a ShopServer object ready to be registered.
func InitServer(rec reconciler.Reconciler, log *zap.Logger) (*ShopServer, error) {
	grpcHandler, err := handlers.InitGRPCHandler(rec, log)
	if err != nil {
		return nil, err
	}
	return &ShopServer{grpcHandler: grpcHandler}, nil
}

// NewGRPCServer builds a grpc.Server with logging and auth interceptors and srv registered.
func NewGRPCServer(srv *ShopServer, sec secretary.Secretary, log *zap.Logger) *grpc.Server {
	authHandler := interceptors.NewAuthHandler(sec, log)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.LoggingInterceptor(log),
		authHandler.UnaryServerInterceptor(),
	))
	shopservice.RegisterShopServiceServer(s, srv)
	return s
}

// GetUptime is a GRPC method for getting server uptime data.
func (s *ShopServer) GetUptime(_ context.Context, _ *shopservice.GetUptimeRequest) (*shopservice.GetUptimeResponse, error) {
	return &shopservice.GetUptimeResponse{Uptime: uptime()}, nil
}

// PingDB is a GRPC method to check DB connection.
func (s *ShopServer) PingDB(ctx context.Context, _ *shopservice.PingDBRequest) (*shopservice.PingDBResponse, error) {
	return s.grpcHandler.HandlePingDB(ctx)
}

// Search is a GRPC method proxying a gourmet search.
func (s *ShopServer) Search(ctx context.Context, request *shopservice.SearchRequest) (*shopservice.SearchResponse, error) {
	return s.grpcHandler.HandleSearch(ctx, request)
}

// Resolve is a GRPC method resolving one shop store-first.
func (s *ShopServer) Resolve(ctx context.Context, request *shopservice.ResolveRequest) (*shopservice.ResolveResponse, error) {
	return s.grpcHandler.HandleResolve(ctx, request)
}

// Share is a GRPC method sharing a shop into a group.
func (s *ShopServer) Share(ctx context.Context, request *shopservice.ShareRequest) (*shopservice.ShareResponse, error) {
	return s.grpcHandler.HandleShare(ctx, request)
}

// Save is a GRPC method bookmarking a shop for the caller.
func (s *ShopServer) Save(ctx context.Context, request *shopservice.SaveRequest) (*shopservice.SaveResponse, error) {
	return s.grpcHandler.HandleSave(ctx, request)
}
