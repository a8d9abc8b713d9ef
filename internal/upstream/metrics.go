package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is optional; a nil *Metrics records nothing.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	Loaded   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_upstream_requests_total",
				Help: "Upstream catalog requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "catalog_upstream_request_duration_seconds",
				Help: "Upstream catalog request latency",
			},
			[]string{"endpoint"},
		),
		Loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_products_loaded",
			Help: "Products held in the dataset",
		}),
	}

	reg.MustRegister(m.Requests, m.Latency, m.Loaded)
	return m
}

func (m *Metrics) observe(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(endpoint, outcome).Inc()
	m.Latency.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *Metrics) setLoaded(n int) {
	if m == nil {
		return
	}
	m.Loaded.Set(float64(n))
}
