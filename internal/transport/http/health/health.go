package health

import (
	"context"
	"net/http"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

const (
	serving    = "SERVING"
	notServing = "NOT_SERVING"
)

// PingFunc checks a backing dependency, usually the document store.
type PingFunc func(ctx context.Context) error

// Handler answers SERVING while ping succeeds within timeout and
// NOT_SERVING with 503 otherwise. A nil ping always serves.
func Handler(ping PingFunc, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, serving

		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			if err := ping(ctx); err != nil {
				logger.Warn(r.Context(), "health check ping", logger.ErrorF(err))
				status, body = http.StatusServiceUnavailable, notServing
			}
		}

		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
