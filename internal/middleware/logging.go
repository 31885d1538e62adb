package middleware

import (
	"net/http"
	"time"

	"listingadmin/internal/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with its status and duration.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			reqLog := log.With("request_id", chimw.GetReqID(r.Context()))
			format := "%s %s %d %s"
			args := []any{r.Method, r.URL.Path, status, time.Since(start)}
			if status >= http.StatusInternalServerError {
				reqLog.Error(format, args...)
				return
			}
			reqLog.Info(format, args...)
		})
	}
}
