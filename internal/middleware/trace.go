package middleware

import (
	"net/http"
	"time"

	"github.com/fittrack-app/fittrack/internal/logging"
)

// Trace assigns every request a trace ID and logs it on completion.
// An inbound X-Trace-Id header is honored so callers can correlate.
func Trace(log *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get("X-Trace-Id")
			if traceID == "" {
				traceID = logging.NewTraceID()
			}
			ctx := logging.WithTraceID(r.Context(), traceID)
			w.Header().Set("X-Trace-Id", traceID)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))
			log.LogRequest(ctx, r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
