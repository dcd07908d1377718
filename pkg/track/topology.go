package track

import (
	"github.com/dd0wney/trackgraph/pkg/collections"
	"github.com/dd0wney/trackgraph/pkg/logging"
	"github.com/dd0wney/trackgraph/pkg/validation"
)

// AddEdge records a new undirected edge {low, high} of the given length,
// creating both endpoint nodes implicitly. It returns false, nil if the
// unordered pair already has an edge; InvalidArgument if length is
// non-positive or low == high (spec.md §4.2).
func (g *Graph[K]) AddEdge(low, high K, length int) (bool, error) {
	if err := validation.ValidateAddEdgeRequest(validation.AddEdgeRequest{Length: length}); err != nil {
		return false, err
	}
	if err := validation.ValidateNoSelfEdge(low, high); err != nil {
		return false, err
	}

	if _, ok := g.pairs.Get(low, high); ok {
		g.metrics.RecordEdgeRefused("duplicate")
		return false, nil
	}

	e := &edge[K]{low: low, high: high, length: length, slices: collections.NewMultiset[string]()}
	g.pairs.Set(low, high, e)
	g.edgeCount++

	nLow := g.ensureNode(low)
	nHigh := g.ensureNode(high)
	nLow.other[high] = &side[K]{edge: e, through: make(map[K]struct{})}
	nHigh.other[low] = &side[K]{edge: e, through: make(map[K]struct{})}

	g.emitEdgeChange(low, high, length)
	g.metrics.RecordEdgeAdded(g.edgeCount)
	g.logger.Debug("edge added", logging.EdgeKey(low, high), logging.Delta(length))

	return true, nil
}

// LookupEdge returns a copy of the edge state for {a, b}, or ok=false if no
// such edge exists. Low/High reflect the order the edge was originally
// added in, regardless of query order.
func (g *Graph[K]) LookupEdge(a, b K) (EdgeView[K], bool) {
	e, ok := g.pairs.Get(a, b)
	if !ok {
		return EdgeView[K]{}, false
	}
	return EdgeView[K]{
		Low:    e.low,
		High:   e.high,
		Length: e.length,
		Slices: e.slices.Uniques(),
	}, true
}

// DeleteEdge removes the edge {a, b}. It refuses (returns false) if no such
// edge exists, or if any slice currently occupies it (spec.md §4.2). On
// success it clears every through-relation on both endpoints that
// referenced the now-missing neighbour, and emits an edge-change event with
// Length 0.
func (g *Graph[K]) DeleteEdge(a, b K) bool {
	e, ok := g.pairs.Get(a, b)
	if !ok {
		return false
	}
	if e.slices.Total() > 0 {
		g.metrics.RecordEdgeRefused("occupied")
		g.logger.Warn("delete edge refused: occupied", logging.EdgeKey(a, b))
		return false
	}

	g.pairs.Delete(a, b)
	g.edgeCount--
	g.dropNeighbourReferences(e.low, e.high)
	g.dropNeighbourReferences(e.high, e.low)

	g.emitEdgeChange(e.low, e.high, 0)
	g.metrics.RecordEdgeDeleted(g.edgeCount)
	g.logger.Debug("edge deleted", logging.EdgeKey(a, b))

	return true
}

// dropNeighbourReferences removes t's side for the now-gone neighbour, and
// strips gone from every other side's through set on t (spec.md §4.2:
// "clears all through relations on both endpoints that referenced the now-
// missing neighbour").
func (g *Graph[K]) dropNeighbourReferences(t, gone K) {
	n, ok := g.nodes[t]
	if !ok {
		return
	}
	for neighbour, s := range n.other {
		if neighbour == gone {
			continue
		}
		delete(s.through, gone)
	}
	delete(n.other, gone)
}

// Connect declares that a train may pass straight through `through` between
// its neighbours a and b. Requires a, through, and b pairwise distinct
// (InvalidArgument otherwise). Returns false if either edge (through,a) or
// (through,b) is missing, or the link already exists.
func (g *Graph[K]) Connect(a, through, b K) (bool, error) {
	if err := validation.ValidatePairwiseDistinct(validation.ConnectRequest[K]{A: a, Through: through, B: b}); err != nil {
		return false, err
	}

	n, ok := g.nodes[through]
	if !ok {
		return false, nil
	}
	sideA, okA := n.other[a]
	sideB, okB := n.other[b]
	if !okA || !okB {
		return false, nil
	}
	if _, exists := sideA.through[b]; exists {
		return false, nil
	}

	sideA.through[b] = struct{}{}
	sideB.through[a] = struct{}{}

	g.metrics.RecordConnection()
	g.logger.Debug("connected", logging.NodeKey(a), logging.NodeKey(through), logging.NodeKey(b))

	return true, nil
}

// Disconnect removes a previously declared through-link. Returns false if
// the link is absent. Refuses if any slice on `through` traverses it via
// the subsequence [a, through, b] or [b, through, a] (spec.md §4.2).
func (g *Graph[K]) Disconnect(a, through, b K) bool {
	n, ok := g.nodes[through]
	if !ok {
		return false
	}
	sideA, okA := n.other[a]
	sideB, okB := n.other[b]
	if !okA || !okB {
		return false
	}
	if _, exists := sideA.through[b]; !exists {
		return false
	}

	if g.disconnectUsedBySlice(n, a, through, b) {
		g.metrics.RecordDisconnection("refused")
		g.logger.Warn("disconnect refused: in use", logging.NodeKey(a), logging.NodeKey(through), logging.NodeKey(b))
		return false
	}

	delete(sideA.through, b)
	delete(sideB.through, a)

	g.metrics.RecordDisconnection("removed")
	g.logger.Debug("disconnected", logging.NodeKey(a), logging.NodeKey(through), logging.NodeKey(b))

	return true
}

func (g *Graph[K]) disconnectUsedBySlice(n *node[K], a, through, b K) bool {
	for _, id := range n.slices.Uniques() {
		rec, ok := g.slicesByID[id]
		if !ok {
			continue
		}
		if containsJunctionCrossing(rec.along, a, through, b) {
			return true
		}
	}
	return false
}

// Edges yields a view of every edge currently recorded, in no particular
// order. It exists for consumers that must replay the graph's full topology
// on construction, such as pkg/division's Construction.
func (g *Graph[K]) Edges() func(func(EdgeView[K]) bool) {
	return func(yield func(EdgeView[K]) bool) {
		for pair := range g.pairs.All() {
			e := pair.V
			view := EdgeView[K]{Low: e.low, High: e.high, Length: e.length, Slices: e.slices.Uniques()}
			if !yield(view) {
				return
			}
		}
	}
}

// LookupNode returns a copy of node at's neighbour/through-set map and
// touching slices. An unknown node returns an empty NodeView.
func (g *Graph[K]) LookupNode(at K) NodeView[K] {
	n, ok := g.nodes[at]
	if !ok {
		return NodeView[K]{Other: map[K][]K{}, Slices: []string{}}
	}

	other := make(map[K][]K, len(n.other))
	for neighbour, s := range n.other {
		through := make([]K, 0, len(s.through))
		for t := range s.through {
			through = append(through, t)
		}
		other[neighbour] = through
	}

	return NodeView[K]{Other: other, Slices: n.slices.Uniques()}
}
