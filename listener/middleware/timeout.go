package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout replaces a non-positive Timeout duration.
const DefaultTimeout = 30 * time.Second

// Timeout returns a middleware that answers 503 Service Unavailable when the
// wrapped handler runs longer than duration. The handler's request context is
// cancelled at the deadline.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	if duration <= 0 {
		slog.Warn("middleware: timeout must be positive, using default",
			"provided", duration, "default", DefaultTimeout)

		duration = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, duration, http.StatusText(http.StatusServiceUnavailable))
	}
}
