package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ngcdex"

// Catalog store Prometheus metrics.
var (
	StoreRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_requests_total",
			Help:      "Total number of catalog store calls",
		},
		[]string{"op", "status"}, // status: "ok" / "not_found" / "error"
	)

	StoreRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_request_duration_seconds",
			Help:      "Catalog store call duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"op"},
	)

	StoreRowsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_rows_returned",
			Help:      "Rows returned by predicate queries",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"op"},
	)

	CacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_total",
			Help:      "Catalog row cache hits and misses",
		},
		[]string{"kind", "result"}, // result: "hit" / "miss"
	)

	ProximityCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "proximity_candidates",
			Help:      "Bounding box candidates fetched per proximity query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	ProximityHits = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "proximity_hits",
			Help:      "Objects within radius per proximity query",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestsInFlight,
			httpRequestDuration,
			httpRequestsTotal,
			httpResponseBytes,
			StoreRequestsTotal,
			StoreRequestDuration,
			StoreRowsReturned,
			CacheTotal,
			ProximityCandidates,
			ProximityHits,
		)
	})
}
