// Package handlers maps GRPC requests onto the reconciler and its errors onto status codes.
package handlers

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/interceptors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/api/grpc/shopservice"
	serviceErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/service/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/reconciler"
	storageErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/storage/errors"
)

// GRPCHandler defines data structure handling and provides support for adding new implementations.
type GRPCHandler struct {
	reconciler reconciler.Reconciler
	log        *zap.Logger
}

// InitGRPCHandler initializes a GRPCHandler object and sets its attributes.
func InitGRPCHandler(rec reconciler.Reconciler, log *zap.Logger) (*GRPCHandler, error) {
	if rec == nil {
		return nil, errors.New("nil Reconciler Service was passed to GRPC Handler initializer")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GRPCHandler{reconciler: rec, log: log}, nil
}

// HandleSearch runs a search, or a bulk lookup when only ids are given.
func (h *GRPCHandler) HandleSearch(ctx context.Context, request *shopservice.SearchRequest) (*shopservice.SearchResponse, error) {
	if request.ID == "" && len(request.IDs) > 0 {
		return &shopservice.SearchResponse{ByID: h.reconciler.ResolveBulk(ctx, request.IDs)}, nil
	}
	shops, err := h.reconciler.Search(ctx, modelshop.Query{
		Keyword:   request.Keyword,
		Genre:     request.Genre,
		SmallArea: request.SmallArea,
		ID:        request.ID,
	})
	var malformed *serviceErrors.UpstreamMalformedError
	if err != nil && !errors.As(err, &malformed) {
		return nil, statusFromError(err)
	}
	return &shopservice.SearchResponse{Shops: shops}, nil
}

// HandleResolve resolves one shop store-first.
func (h *GRPCHandler) HandleResolve(ctx context.Context, request *shopservice.ResolveRequest) (*shopservice.ResolveResponse, error) {
	detail, err := h.reconciler.Resolve(ctx, interceptors.AuthFromContext(ctx), request.ID, reconciler.ResolveOptions{
		GroupID: request.GroupID,
		Private: request.Private,
		Persist: request.Persist,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &shopservice.ResolveResponse{Detail: detail}, nil
}

// HandleShare upserts a shop into a group.
func (h *GRPCHandler) HandleShare(ctx context.Context, request *shopservice.ShareRequest) (*shopservice.ShareResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	shared, err := h.reconciler.Share(ctx, interceptors.AuthFromContext(ctx), request.Shop, request.GroupID)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &shopservice.ShareResponse{Shared: shared}, nil
}

// HandleSave upserts a shop into the caller's bookmarks.
func (h *GRPCHandler) HandleSave(ctx context.Context, request *shopservice.SaveRequest) (*shopservice.SaveResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	saved, err := h.reconciler.Save(ctx, interceptors.AuthFromContext(ctx), request.Shop)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &shopservice.SaveResponse{Saved: saved}, nil
}

// HandlePingDB handles DB pinging to check connection status.
func (h *GRPCHandler) HandlePingDB(ctx context.Context) (*shopservice.PingDBResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if err := h.reconciler.PingDB(ctx); err != nil {
		h.log.Error("HandlePingDB", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &shopservice.PingDBResponse{}, nil
}

func statusFromError(err error) error {
	var (
		authErr     *serviceErrors.AuthenticationRequiredError
		inputErr    *serviceErrors.ServiceIncorrectInput
		notFound    *serviceErrors.NotFoundError
		unavailable *serviceErrors.UpstreamUnavailableError
		malformed   *serviceErrors.UpstreamMalformedError
		timeout     *storageErrors.ContextTimeoutExceededError
	)
	switch {
	case errors.As(err, &authErr):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.As(err, &inputErr):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &unavailable), errors.As(err, &malformed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.As(err, &timeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
