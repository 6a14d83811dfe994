package interceptors

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pribylovaa/hbnb-web/internal/metrics"
)

// Metrics считает вызовы и длительность по имени операции из контекста.
func Metrics() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			op := OpFrom(r.Context())
			start := time.Now()

			resp, err := next.RoundTrip(r)
			metrics.BackendDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

			status := "error"
			if err == nil {
				status = strconv.Itoa(resp.StatusCode)
			}
			metrics.BackendRequests.WithLabelValues(op, status).Inc()

			return resp, err
		})
	}
}
