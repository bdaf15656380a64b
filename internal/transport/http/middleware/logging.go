package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

// Logging writes one access record per request through the service logger.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		ctx := logger.WithContextFields(r.Context(), logger.String("request_id", chimw.GetReqID(r.Context())))
		r = r.WithContext(ctx)

		next.ServeHTTP(ww, r)

		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", ww.Status()),
			logger.Int("bytes", ww.BytesWritten()),
			logger.Duration("duration", time.Since(start)),
		}
		if ww.Status() >= http.StatusInternalServerError {
			logger.Error(ctx, "http request", fields...)
			return
		}
		logger.Info(ctx, "http request", fields...)
	})
}
