// Package observability holds Prometheus collectors shared by the data layer.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DatabaseQueryLatency records database query latency by operation and table.
var DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "liberty_database_query_latency_seconds",
	Help:    "Database query latency in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"operation", "table"})

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
