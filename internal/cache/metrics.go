package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// KeyPrefixLabel is the label for cache metrics, representing the key prefix.
const KeyPrefixLabel = "key_prefix"

// Metrics contains the Prometheus collectors for cache lookups.
type Metrics struct {
	Hits   *prometheus.CounterVec
	Misses *prometheus.CounterVec
}

// NewMetrics creates the cache collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_hit_count",
			Help: "The number of cache hits",
		}, []string{KeyPrefixLabel}),
		Misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_miss_count",
			Help: "The number of cache misses",
		}, []string{KeyPrefixLabel}),
	}
	for _, c := range []prometheus.Collector{m.Hits, m.Misses} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
