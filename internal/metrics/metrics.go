// Package metrics exposes the engine's Prometheus instrumentation: cache
// hit/miss counters, per-strategy oracle call latency, and the score
// distribution of returned hits.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the engine's Prometheus collectors. A zero-value
// Metrics is unusable; build one with New and register it with a
// registerer of the caller's choosing.
type Metrics struct {
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	OracleLatency *prometheus.HistogramVec

	ReplyScore prometheus.Histogram
}

// New builds the engine's metric collectors under the frrerank namespace.
func New() *Metrics {
	return &Metrics{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frrerank",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Number of result cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frrerank",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Number of result cache misses.",
		}),
		OracleLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "frrerank",
			Subsystem: "oracle",
			Name:      "call_duration_seconds",
			Help:      "Latency of a single discovery strategy's oracle call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
		ReplyScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "frrerank",
			Subsystem: "reply",
			Name:      "hit_score",
			Help:      "Distribution of _score across returned hits.",
			Buckets:   []float64{0, 2, 4, 6, 7, 8, 8.5, 9, 9.5, 9.99, 10},
		}),
	}
}

// MustRegister registers every collector with reg, panicking on a
// duplicate registration — a programmer error, not a runtime condition.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.CacheHits, m.CacheMisses, m.OracleLatency, m.ReplyScore)
}
