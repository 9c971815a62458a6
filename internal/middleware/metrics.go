package middleware

import (
	"Reminder/internal/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// WithMetrics считает запросы по шаблону маршрута chi, а не по сырому пути:
// иначе каждый id порождал бы свою серию.
func WithMetrics(rec metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			data := &responseData{status: http.StatusOK}
			next.ServeHTTP(&loggingResponseWriter{ResponseWriter: w, data: data}, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			rec.RecordRequest(r.Method, route, data.status, time.Since(start))
		})
	}
}
