// metrics — Prometheus-коллекторы hbnb-web.
// Регистрируются в реестре по умолчанию; отдаются promhttp на отдельном сервере.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hbnb_web"

var (
	// HTTPRequests — входящие запросы по шаблону маршрута chi.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Incoming HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Incoming HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// BackendRequests — исходящие вызовы REST API; status="error" для сетевых сбоев.
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Outgoing backend calls by operation and status.",
	}, []string{"op", "status"})

	BackendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Outgoing backend call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	// CacheLookups — обращения к кэшу списка мест, result: hit|miss|error.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Listings cache lookups by result.",
	}, []string{"result"})

	// SessionStates — результат разбора cookie сессии на каждом запросе.
	SessionStates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "session",
		Name:      "resolved_total",
		Help:      "Resolved session states.",
	}, []string{"state"})
)
