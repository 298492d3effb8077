package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelauth"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary"
)

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
	return &AuthHandler{sec: sec, log: log}
}

// AuthHandle puts the verified caller into the request context. Requests without a token
// proceed anonymously; a token that fails verification is rejected.
func (a *AuthHandler) AuthHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := bearer(header)
		if !ok {
			http.Error(w, "Malformed Authorization header", http.StatusUnauthorized)
			return
		}
		userID, err := a.sec.Verify(token)
		if err != nil {
			a.log.Info("Rejected bearer token", zap.Error(err))
			http.Error(w, "Invalid access token", http.StatusUnauthorized)
			return
		}
		ctx := ContextWithAuth(r.Context(), modelauth.AuthContext{UserID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
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

func bearer(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
