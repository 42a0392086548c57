package rpcs

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the prometheus collectors of a tree server. Each
// instance owns its registry so several servers can coexist
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	nodes    prometheus.Gauge
	height   prometheus.Gauge
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bst",
			Name:      "requests_total",
			Help:      "Requests served, by operation and status code",
		}, []string{"op", "status"}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bst",
			Name:      "tree_nodes",
			Help:      "Number of nodes in the tree",
		}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bst",
			Name:      "tree_max_depth",
			Help:      "Height of the tree",
		}),
	}

	m.registry.MustRegister(m.requests, m.nodes, m.height)
	return m
}

// Handler serves the metrics in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(op string, status int) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(op, strconv.Itoa(status)).Inc()
}

func (m *Metrics) setShape(nodes, height int) {
	m.nodes.Set(float64(nodes))
	m.height.Set(float64(height))
}
