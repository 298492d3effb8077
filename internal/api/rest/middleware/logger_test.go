package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(RequestLogger(zap.New(core)))
	router.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	router.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	tests := []struct {
		path  string
		level zapcore.Level
		code  int64
	}{
		{path: "/ok", level: zapcore.InfoLevel, code: http.StatusOK},
		{path: "/missing", level: zapcore.WarnLevel, code: http.StatusNotFound},
		{path: "/broken", level: zapcore.ErrorLevel, code: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.code, fields["status"])
			assert.Equal(t, tt.path, fields["path"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}
