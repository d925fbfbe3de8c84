package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// QueryNameLabel is the label for DB metrics, representing the query name (e.g., "Create", "FindByPath").
	QueryNameLabel = "query_name"
	// StatusLabel is the label for DB metrics, representing the outcome.
	StatusLabel = "status"

	StatusSuccess   = "success"
	StatusError     = "error"
	StatusNotFound  = "not_found"
	StatusCollision = "collision"
)

// Metrics contains the Prometheus collectors for short link queries.
type Metrics struct {
	QueryDuration *prometheus.HistogramVec
	QueryTotal    *prometheus.CounterVec
}

// NewMetrics creates the query collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "The latency of database queries in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{QueryNameLabel}),
		QueryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_total",
			Help: "The total number of database queries.",
		}, []string{QueryNameLabel, StatusLabel}),
	}

	for _, c := range []prometheus.Collector{m.QueryDuration, m.QueryTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(queryName, status string, start time.Time) {
	m.QueryDuration.WithLabelValues(queryName).Observe(time.Since(start).Seconds())
	m.QueryTotal.WithLabelValues(queryName, status).Inc()
}
