// Package trackops implements C8: the high-level helpers built purely on
// pkg/track's exported surface — splitting an edge in place, translating a
// slice, and cloning/reconstructing slices from a described shape.
package trackops

import (
	"github.com/dd0wney/trackgraph/pkg/logging"
	"github.com/dd0wney/trackgraph/pkg/metrics"
	"github.com/dd0wney/trackgraph/pkg/track"
)

// Config configures an Ops instance's optional ambient dependencies. The
// zero value is valid: a nop logger and no metrics.
type Config struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Ops is a thin, stateless-beyond-its-graph wrapper exposing C8's helpers
// against a single *track.Graph[K]. It never touches track's internal
// types — every operation is expressed through AddEdge, LookupEdge,
// DeleteEdge, LookupNode, AddSlice, LookupSlice, DeleteSlice, ModifySlice,
// and Connect.
type Ops[K comparable] struct {
	g       *track.Graph[K]
	logger  logging.Logger
	metrics *metrics.Registry
}

// New returns an Ops wrapping g with no logging or metrics.
func New[K comparable](g *track.Graph[K]) *Ops[K] {
	return NewWithConfig(g, Config{})
}

// NewWithConfig returns an Ops wrapping g using the given ambient
// dependencies, defaulting to a nop logger.
func NewWithConfig[K comparable](g *track.Graph[K], cfg Config) *Ops[K] {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Ops[K]{g: g, logger: logger, metrics: cfg.Metrics}
}
