// Package track implements C4 and C5: the Track Graph and the slice engine
// that runs on top of it. A Graph owns nodes, undirected length-bearing
// edges, a per-node through-connection relation, and the inventory of
// slices anchored to its topology.
//
// Nodes arise implicitly on first reference (spec.md §3, "Lifecycle") and
// are never explicitly deleted; edges live from AddEdge to DeleteEdge;
// slices live from AddSlice to DeleteSlice.
package track

import (
	"github.com/dd0wney/trackgraph/pkg/collections"
	"github.com/dd0wney/trackgraph/pkg/logging"
	"github.com/dd0wney/trackgraph/pkg/metrics"
)

// edge is the internal record for an undirected, length-bearing link
// between two nodes. low/high are canonicalized as stored at insertion,
// not as later queried (spec.md §4.2, LookupEdge).
type edge[K comparable] struct {
	low, high K
	length    int
	slices    *collections.Multiset[string]
}

// side is one node's view of one of its neighbours: the shared edge, and
// the set of other neighbours reachable through this node via that
// neighbour (a declared through-connection). Symmetry (I2) is maintained
// structurally: Connect and Disconnect always write both sides at once.
type side[K comparable] struct {
	edge    *edge[K]
	through map[K]struct{}
}

// node is a junction: its neighbours (each with a side), and the multiset
// of slice ids currently abutting or covering it.
type node[K comparable] struct {
	other  map[K]*side[K]
	slices *collections.Multiset[string]
}

func newNode[K comparable]() *node[K] {
	return &node[K]{
		other:  make(map[K]*side[K]),
		slices: collections.NewMultiset[string](),
	}
}

// sliceRecord is the internal, mutable state of a live slice.
type sliceRecord[K comparable] struct {
	along []K
	back  int
	front int
	// length is the sum of occupied distances; kept alongside along/back/front
	// rather than derived, since ModifySlice needs the pre-mutation value to
	// clamp shrink amounts.
	length int
}

// Slice is a point-in-time, caller-owned copy of a live slice's state, as
// returned by LookupSlice. Mutating it has no effect on the graph.
type Slice[K comparable] struct {
	Along  []K
	Back   int
	Front  int
	Length int
}

// EdgeView is a point-in-time, caller-owned copy of a live edge's state, as
// returned by LookupEdge.
type EdgeView[K comparable] struct {
	Low, High K
	Length    int
	Slices    []string
}

// NodeView is a point-in-time, caller-owned copy of a node's state, as
// returned by LookupNode. Other maps each neighbour to the neighbours
// reachable through this node via that neighbour. An unknown node yields a
// NodeView with empty maps, exactly as spec.md's "implicit nodes" note
// describes: unknown and known-but-empty are not distinguishable here.
type NodeView[K comparable] struct {
	Other  map[K][]K
	Slices []string
}

// WhereFunc resolves a branch during slice growth: given the candidate
// neighbours at a junction, it returns the chosen one, or ok=false to halt
// growth. It is the slice engine's only source of caller-supplied
// non-determinism (spec.md §9, "caller-guided branch resolution") and must
// behave as a pure function during a single ModifySlice call.
type WhereFunc[K comparable] func(candidates []K) (K, bool)

// InvariantError is raised via panic when an internal consistency check
// fails — spec.md §7 treats these as bugs, not user errors, fatal for the
// library instance rather than recoverable via a returned error.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return e.Op + ": " + e.Message
}

// Config configures a Graph's optional ambient dependencies. The zero value
// is valid: a nop logger and no metrics.
type Config struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}

// Graph is the Track Graph (C4) plus the slice engine (C5) that runs on top
// of it, generic over a caller-chosen comparable key type.
type Graph[K comparable] struct {
	nodes      map[K]*node[K]
	pairs      *collections.PairMap[K, *edge[K]]
	edgeCount  int
	slicesByID map[string]*sliceRecord[K]

	listeners      []edgeListenerEntry[K]
	nextListenerID int

	logger  logging.Logger
	metrics *metrics.Registry
}

type edgeListenerEntry[K comparable] struct {
	id int
	fn EdgeListener[K]
}

// New returns an empty Track Graph with no logging or metrics.
func New[K comparable]() *Graph[K] {
	return NewWithConfig[K](Config{})
}

// NewWithConfig returns an empty Track Graph using the given ambient
// dependencies, defaulting to a nop logger the same way the teacher's
// storage layer defaults to a discard logger when none is supplied.
func NewWithConfig[K comparable](cfg Config) *Graph[K] {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Graph[K]{
		nodes:      make(map[K]*node[K]),
		pairs:      collections.NewPairMap[K, *edge[K]](),
		slicesByID: make(map[string]*sliceRecord[K]),
		logger:     logger,
		metrics:    cfg.Metrics,
	}
}

// ensureNode returns the node record for k, creating it on first reference.
func (g *Graph[K]) ensureNode(k K) *node[K] {
	n, ok := g.nodes[k]
	if ok {
		return n
	}
	n = newNode[K]()
	g.nodes[k] = n
	g.metrics.RecordNodeTouched()
	return n
}
