// Package interceptors provides various middleware functionality for GRPC.
package interceptors

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelauth"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary"
)

// AuthKey is the metadata key carrying the bearer token.
const AuthKey = "authorization"

type ctxKey int

const userKey ctxKey = iota

// AuthHandler sets object structure.
type AuthHandler struct {
	sec secretary.Secretary
	log *zap.Logger
}

// NewAuthHandler initializes a new bearer token handler.
func NewAuthHandler(sec secretary.Secretary, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{
		sec: sec,
		log: log,
	}
}

// AuthFunc verifies the bearer token from incoming metadata and stores the caller in the
// returned context. Calls without a token proceed anonymously.
func (a *AuthHandler) AuthFunc(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ContextWithAuth(ctx, modelauth.Anonymous()), nil
	}
	values := md.Get(AuthKey)
	if len(values) == 0 {
		return ContextWithAuth(ctx, modelauth.Anonymous()), nil
	}
	token, ok := bearer(values[0])
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "malformed authorization metadata")
	}
	userID, err := a.sec.Verify(token)
	if err != nil {
		a.log.Info("AuthFunc", zap.Error(err))
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	return ContextWithAuth(ctx, modelauth.AuthContext{UserID: userID}), nil
}

// UnaryServerInterceptor returns a new unary server interceptors that performs per-request auth.
func (a *AuthHandler) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		newCtx, err := a.AuthFunc(ctx)
		if err != nil {
			return nil, err
		}
		return handler(newCtx, req)
	}
}

// ContextWithAuth stores the caller in ctx.
func ContextWithAuth(ctx context.Context, auth modelauth.AuthContext) context.Context {
	return context.WithValue(ctx, userKey, auth)
}

// AuthFromContext returns the caller stored in ctx or an anonymous context.
func AuthFromContext(ctx context.Context) modelauth.AuthContext {
	auth, ok := ctx.Value(userKey).(modelauth.AuthContext)
	if !ok {
		return modelauth.Anonymous()
	}
	return auth
}

func bearer(value string) (string, bool) {
	const prefix = "bearer "
	if len(value) <= len(prefix) || !strings.EqualFold(value[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(value[len(prefix):])
	return token, token != ""
}
