package http

import (
	"context"
	stdhttp "net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck pings a dependency such as the receipt database.
type HealthCheck func(ctx context.Context) error

// HandleHealth reports "ok", or 503 when any check fails.
func HandleHealth(checks ...HealthCheck) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		status, body := stdhttp.StatusOK, "ok"
		for _, check := range checks {
			if err := check(ctx); err != nil {
				status, body = stdhttp.StatusServiceUnavailable, "unavailable"
				break
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
