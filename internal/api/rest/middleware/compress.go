// Package middleware provides various middleware functionality.
package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	chiMiddleware "github.com/go-chi/chi/middleware"
)

// compressibleTypes lists response content types worth compressing.
var compressibleTypes = []string{
	"application/json",
	"text/plain",
	"text/html",
}

var compressor = chiMiddleware.Compress(gzip.BestSpeed, compressibleTypes...)

// CompressHandle compresses JSON and text responses for clients accepting gzip or deflate.
func CompressHandle(next http.Handler) http.Handler {
	return compressor(next)
}

// DecompressHandle transparently inflates gzip request bodies. A body that is not valid gzip
// is rejected with 400.
func DecompressHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasToken(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Invalid gzip body: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer gz.Close()
		r.Body = gz
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}

// hasToken reports whether a comma-separated header value lists token, ignoring parameters.
func hasToken(value, token string) bool {
	for _, part := range strings.Split(value, ",") {
		if i := strings.IndexByte(part, ';'); i >= 0 {
			part = part[:i]
		}
		if strings.EqualFold(strings.TrimSpace(part), token) {
			return true
		}
	}
	return false
}
