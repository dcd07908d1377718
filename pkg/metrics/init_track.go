package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTrackMetrics() {
	r.EdgesAddedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "track_edges_added_total",
			Help: "Total number of edges successfully added to the track graph",
		},
	)

	r.EdgesDeletedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "track_edges_deleted_total",
			Help: "Total number of edges successfully deleted from the track graph",
		},
	)

	r.EdgesRefusedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "track_edges_refused_total",
			Help: "Total number of edge mutations refused, labelled by reason",
		},
		[]string{"reason"},
	)

	r.ConnectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "track_connections_total",
			Help: "Total number of through-connections declared",
		},
	)

	r.DisconnectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "track_disconnections_total",
			Help: "Total number of through-connection removals, labelled by outcome",
		},
		[]string{"outcome"},
	)

	r.EdgesCurrent = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "track_edges_current",
			Help: "Current number of live edges in the track graph",
		},
	)

	r.NodesTouchedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "track_nodes_touched_total",
			Help: "Total number of distinct node references observed (implicit node creation)",
		},
	)
}

func (r *Registry) initSliceMetrics() {
	r.SlicesAddedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "slice_added_total",
			Help: "Total number of slices created",
		},
	)

	r.SlicesDeletedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "slice_deleted_total",
			Help: "Total number of slices deleted",
		},
	)

	r.SliceGrowsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "slice_grows_total",
			Help: "Total number of ModifySlice calls that grew a slice end",
		},
	)

	r.SliceShrinksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "slice_shrinks_total",
			Help: "Total number of ModifySlice calls that shrank a slice end",
		},
	)

	r.SliceModifyDelta = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slice_modify_delta",
			Help:    "Magnitude of the signed delta actually applied by ModifySlice",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	r.SlicesCurrent = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "slice_current",
			Help: "Current number of live slices",
		},
	)
}

func (r *Registry) initDivisionMetrics() {
	r.DivisionBlocksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "division_blocks_total",
			Help: "Total number of successful addDivision calls",
		},
	)

	r.DivisionUnblocksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "division_unblocks_total",
			Help: "Total number of successful deleteDivision calls",
		},
	)

	r.DivisionsActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "division_active",
			Help: "Current number of blocked nodes",
		},
	)
}
