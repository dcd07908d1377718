package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the track-network instrumentation for a single graph
// instance. A nil *Registry is valid everywhere a Registry is accepted —
// every Record* method is a no-op on a nil receiver, so callers that don't
// care about metrics never have to construct one.
type Registry struct {
	// Track Graph metrics (C4)
	EdgesAddedTotal      prometheus.Counter
	EdgesDeletedTotal     prometheus.Counter
	EdgesRefusedTotal     *prometheus.CounterVec
	ConnectionsTotal      prometheus.Counter
	DisconnectionsTotal   *prometheus.CounterVec
	EdgesCurrent          prometheus.Gauge
	NodesTouchedTotal     prometheus.Counter

	// Slice engine metrics (C5)
	SlicesAddedTotal   prometheus.Counter
	SlicesDeletedTotal prometheus.Counter
	SliceGrowsTotal    prometheus.Counter
	SliceShrinksTotal  prometheus.Counter
	SliceModifyDelta   prometheus.Histogram
	SlicesCurrent      prometheus.Gauge

	// Division Graph metrics (C7)
	DivisionBlocksTotal   prometheus.Counter
	DivisionUnblocksTotal prometheus.Counter
	DivisionsActive       prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

// NewRegistry creates a new metrics registry with all track-network
// instruments initialized against a fresh prometheus.Registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initTrackMetrics()
	r.initSliceMetrics()
	r.initDivisionMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry, e.g. to
// register it with an /metrics HTTP handler owned by the caller.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
