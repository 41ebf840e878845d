package middleware

import (
	"log/slog"
	"net/http"

	"github.com/0xalexb/hjarta-config/config"
)

// DefaultMaxRequestSize replaces a non-positive MaxRequestSize limit.
const DefaultMaxRequestSize = config.Mebibyte

// MaxRequestSize returns a middleware that caps request bodies at limit with
// http.MaxBytesReader. Reading past the limit fails with *http.MaxBytesError;
// handlers should answer 413 Request Entity Too Large.
func MaxRequestSize(limit config.ByteSize) func(http.Handler) http.Handler {
	if limit <= 0 {
		slog.Warn("middleware: request size limit must be positive, using default",
			"provided", limit.Bytes(), "default", DefaultMaxRequestSize.String())

		limit = DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit.Bytes())
			next.ServeHTTP(w, r)
		})
	}
}
