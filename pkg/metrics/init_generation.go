package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.GenerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordmill_generations_total",
			Help: "Total number of network generations",
		},
		[]string{"algorithm", "result"}, // result: success, error
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordmill_generation_duration_seconds",
			Help:    "Duration of network generation in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"algorithm"},
	)

	r.GeneratedNodesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordmill_generated_nodes_total",
			Help: "Total number of nodes created by generation",
		},
		[]string{"algorithm", "kind"}, // kind: Source, Sink, Inventory, Machine
	)

	r.GeneratedEdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordmill_generated_edges_total",
			Help: "Total number of edges created by generation",
		},
		[]string{"algorithm"},
	)
}

func (r *Registry) initDiscoveryMetrics() {
	r.DiscoveriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordmill_discoveries_total",
			Help: "Total number of discovery runs",
		},
		[]string{"result"}, // success, incomplete
	)

	r.DiscoveryFailuresTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wordmill_discovery_failures_total",
			Help: "Total number of discoveries that found an incomplete graph",
		},
	)

	r.DiscoveredSystemSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordmill_discovered_system_size",
			Help:    "Number of nodes in successfully discovered systems",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
}

func (r *Registry) initExportMetrics() {
	r.ExportsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordmill_exports_total",
			Help: "Total number of graph exports",
		},
		[]string{"format"}, // dot, layout
	)
}
