package metrics

import (
	"time"
)

// RecordGeneration records one network generation with its duration
func (r *Registry) RecordGeneration(algorithm, result string, duration time.Duration) {
	r.GenerationsTotal.WithLabelValues(algorithm, result).Inc()
	r.GenerationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// RecordGeneratedNodes records nodes created by a generation, per kind
func (r *Registry) RecordGeneratedNodes(algorithm, kind string, count int) {
	r.GeneratedNodesTotal.WithLabelValues(algorithm, kind).Add(float64(count))
}

// RecordGeneratedEdges records edges created by a generation
func (r *Registry) RecordGeneratedEdges(algorithm string, count int) {
	r.GeneratedEdgesTotal.WithLabelValues(algorithm).Add(float64(count))
}

// RecordDiscovery records one discovery run
func (r *Registry) RecordDiscovery(systemSize int, err error) {
	if err != nil {
		r.DiscoveriesTotal.WithLabelValues("incomplete").Inc()
		r.DiscoveryFailuresTotal.Inc()
		return
	}
	r.DiscoveriesTotal.WithLabelValues("success").Inc()
	r.DiscoveredSystemSize.Observe(float64(systemSize))
}

// RecordExport records one graph export in the given format
func (r *Registry) RecordExport(format string) {
	r.ExportsTotal.WithLabelValues(format).Inc()
}
