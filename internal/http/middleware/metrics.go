package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pribylovaa/hbnb-web/internal/metrics"
)

// Metrics считает запросы и длительность по шаблону маршрута chi.
// Запросы вне роутера (404) попадают под route="unmatched".
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			route := routePattern(r)
			metrics.HTTPDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
			metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(sw.Status())).Inc()
		})
	}
}
