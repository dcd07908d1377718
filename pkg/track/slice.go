package track

import (
	"github.com/dd0wney/trackgraph/pkg/collections"
	"github.com/dd0wney/trackgraph/pkg/logging"
)

// AddSlice creates a new slice `id` anchored as a point on node `on`. It
// returns false if id already exists.
func (g *Graph[K]) AddSlice(id string, on K) bool {
	if _, exists := g.slicesByID[id]; exists {
		return false
	}
	g.ensureNode(on)

	rec := &sliceRecord[K]{along: []K{on}}
	g.slicesByID[id] = rec
	g.nodes[on].slices.Add(id)

	g.metrics.RecordSliceAdded(len(g.slicesByID))
	g.logger.Debug("slice added", logging.SliceID(id), logging.NodeKey(on))
	return true
}

// LookupSlice returns a deep copy of slice id's state, or ok=false if
// unknown.
func (g *Graph[K]) LookupSlice(id string) (Slice[K], bool) {
	rec, ok := g.slicesByID[id]
	if !ok {
		return Slice[K]{}, false
	}
	along := make([]K, len(rec.along))
	copy(along, rec.along)
	return Slice[K]{Along: along, Back: rec.back, Front: rec.front, Length: rec.length}, true
}

// DeleteSlice removes slice id, dropping its membership from every edge and
// node it touched. It returns false if id is unknown.
func (g *Graph[K]) DeleteSlice(id string) bool {
	rec, ok := g.slicesByID[id]
	if !ok {
		return false
	}

	g.applyEdgeOccupancy(id, edgeOccupancy(g.pairs, rec.along), nil)
	g.applyNodeOccupancy(id, nodeOccupancy(rec.along, rec.back, rec.front), nil)

	delete(g.slicesByID, id)
	g.metrics.RecordSliceDeleted(len(g.slicesByID))
	g.logger.Debug("slice deleted", logging.SliceID(id))
	return true
}

// ModifySlice grows (by > 0) or shrinks (by < 0) the given end of slice id
// and returns the signed amount actually applied. end must be +1 (front) or
// -1 (back). It returns 0 if id is unknown, by is 0, or the clamped
// magnitude is zero (spec.md §4.3).
func (g *Graph[K]) ModifySlice(id string, end int, by int, where WhereFunc[K]) int {
	rec, ok := g.slicesByID[id]
	if !ok || by == 0 {
		return 0
	}

	oldEdgeOcc := edgeOccupancy(g.pairs, rec.along)
	oldNodeOcc := nodeOccupancy(rec.along, rec.back, rec.front)

	delta := g.modifyEnd(rec, end, by, where)

	newEdgeOcc := edgeOccupancy(g.pairs, rec.along)
	newNodeOcc := nodeOccupancy(rec.along, rec.back, rec.front)
	g.applyEdgeOccupancy(id, oldEdgeOcc, newEdgeOcc)
	g.applyNodeOccupancy(id, oldNodeOcc, newNodeOcc)

	g.metrics.RecordModifySlice(delta)
	g.logger.Debug("slice modified", logging.SliceID(id), logging.Delta(delta))
	return delta
}

// modifyEnd dispatches to growFront/shrinkFront, reusing the front-end
// implementation for the back end by operating on a reversed view of
// along with back and front swapped. Growing or shrinking either end is
// physically symmetric: back's "distance travelled from along[0]" and
// front's "distance remaining to along[-1]" are the same quantity measured
// from opposite ends, so the swap needs no further transformation.
func (g *Graph[K]) modifyEnd(rec *sliceRecord[K], end int, by int, where WhereFunc[K]) int {
	if end == -1 {
		reverseInPlace(rec.along)
		rec.back, rec.front = rec.front, rec.back
		defer func() {
			reverseInPlace(rec.along)
			rec.back, rec.front = rec.front, rec.back
		}()
	}

	if by > 0 {
		return g.growFront(rec, by, where)
	}
	return -g.shrinkFront(rec, -by)
}

// growFront advances the tail of rec.along, consuming room on the current
// terminal edge before crossing into a new one via frontCandidates/where.
func (g *Graph[K]) growFront(rec *sliceRecord[K], by int, where WhereFunc[K]) int {
	applied := 0
	for by > 0 {
		if len(rec.along) > 1 && rec.front > 0 {
			consume := min(by, rec.front)
			rec.front -= consume
			by -= consume
			applied += consume
			rec.length += consume
			if by == 0 {
				break
			}
		}

		candidates := g.frontCandidates(rec)
		chosen, ok := chooseCandidate(candidates, where)
		if !ok {
			break
		}
		active := rec.along[len(rec.along)-1]
		e, ok := g.pairs.Get(active, chosen)
		if !ok {
			panic(&InvariantError{Op: "growFront", Message: "candidate neighbour has no backing edge"})
		}
		rec.along = append(rec.along, chosen)
		rec.front = e.length
	}
	return applied
}

// shrinkFront retracts the tail of rec.along by up to magnitude (clamped to
// rec.length), popping nodes off along as their terminal edge is fully
// vacated. It returns the magnitude actually applied.
func (g *Graph[K]) shrinkFront(rec *sliceRecord[K], magnitude int) int {
	remaining := min(magnitude, rec.length)
	applied := 0

	for remaining > 0 {
		if len(rec.along) == 1 {
			panic(&InvariantError{Op: "shrinkFront", Message: "positive length with single-node along"})
		}
		active := rec.along[len(rec.along)-1]
		predecessor := rec.along[len(rec.along)-2]
		e, ok := g.pairs.Get(predecessor, active)
		if !ok {
			panic(&InvariantError{Op: "shrinkFront", Message: "along names a missing edge"})
		}

		room := e.length - rec.front
		consume := min(remaining, room)
		rec.front += consume
		remaining -= consume
		applied += consume
		rec.length -= consume

		if rec.front == e.length {
			rec.along = rec.along[:len(rec.along)-1]
			rec.front = 0
		}
	}
	return applied
}

// frontCandidates returns the neighbours growth may cross into from the
// current tail of rec.along: every neighbour of the sole node when along is
// a point, or the through-set declared for the active node's side facing
// the predecessor otherwise (spec.md §4.3).
func (g *Graph[K]) frontCandidates(rec *sliceRecord[K]) []K {
	active := rec.along[len(rec.along)-1]
	if len(rec.along) == 1 {
		return g.neighboursOf(active)
	}
	predecessor := rec.along[len(rec.along)-2]
	n, ok := g.nodes[active]
	if !ok {
		return nil
	}
	s, ok := n.other[predecessor]
	if !ok {
		return nil
	}
	out := make([]K, 0, len(s.through))
	for t := range s.through {
		out = append(out, t)
	}
	return out
}

func (g *Graph[K]) neighboursOf(k K) []K {
	n, ok := g.nodes[k]
	if !ok {
		return nil
	}
	out := make([]K, 0, len(n.other))
	for neighbour := range n.other {
		out = append(out, neighbour)
	}
	return out
}

// chooseCandidate implements spec.md §4.3's branch resolution: zero
// candidates halts growth, one is taken without consulting where, more than
// one is resolved by where (which may itself halt growth by returning
// ok=false or a key outside candidates).
func chooseCandidate[K comparable](candidates []K, where WhereFunc[K]) (K, bool) {
	var zero K
	switch len(candidates) {
	case 0:
		return zero, false
	case 1:
		return candidates[0], true
	}
	if where == nil {
		return zero, false
	}
	chosen, ok := where(candidates)
	if !ok {
		return zero, false
	}
	for _, c := range candidates {
		if c == chosen {
			return chosen, true
		}
	}
	return zero, false
}

func reverseInPlace[K any](s []K) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// edgeOccupancy computes, for the current along path, how many of the
// slice's anchors currently sit on each traversed edge: 1 for each edge in
// a path of three or more nodes, or 2 for the sole edge of a two-node path
// where both back and front anchors coincide (spec.md §4.5). This is
// recomputed from scratch rather than tracked incrementally so DeleteSlice
// and every ModifySlice call share one source of truth for occupancy,
// diffed against the pre-mutation snapshot.
func edgeOccupancy[K comparable](pairs *collections.PairMap[K, *edge[K]], along []K) map[*edge[K]]int {
	occ := make(map[*edge[K]]int)
	if len(along) < 2 {
		return occ
	}
	if len(along) == 2 {
		e, ok := pairs.Get(along[0], along[1])
		if ok {
			occ[e] = 2
		}
		return occ
	}
	for i := 0; i < len(along)-1; i++ {
		e, ok := pairs.Get(along[i], along[i+1])
		if ok {
			occ[e]++
		}
	}
	return occ
}

// nodeOccupancy computes which nodes the slice currently touches per I5:
// every interior node of along unconditionally, plus along[0] iff back == 0
// and along[len-1] iff front == 0. A single-node along touches that node.
func nodeOccupancy[K comparable](along []K, back, front int) map[K]bool {
	occ := make(map[K]bool, len(along))
	if len(along) == 1 {
		occ[along[0]] = true
		return occ
	}
	for i := 1; i < len(along)-1; i++ {
		occ[along[i]] = true
	}
	if back == 0 {
		occ[along[0]] = true
	}
	if front == 0 {
		occ[along[len(along)-1]] = true
	}
	return occ
}

func (g *Graph[K]) applyEdgeOccupancy(id string, oldOcc, newOcc map[*edge[K]]int) {
	for e, n := range oldOcc {
		if newOcc[e] < n {
			for i := 0; i < n-newOcc[e]; i++ {
				e.slices.Delete(id)
			}
		}
	}
	for e, n := range newOcc {
		if oldOcc[e] < n {
			for i := 0; i < n-oldOcc[e]; i++ {
				e.slices.Add(id)
			}
		}
	}
}

func (g *Graph[K]) applyNodeOccupancy(id string, oldOcc, newOcc map[K]bool) {
	for k := range oldOcc {
		if !newOcc[k] {
			g.nodes[k].slices.Delete(id)
		}
	}
	for k := range newOcc {
		if !oldOcc[k] {
			g.nodes[k].slices.Add(id)
		}
	}
}

// containsJunctionCrossing reports whether along contains the subsequence
// [a, through, b] or [b, through, a] — the condition under which Disconnect
// must refuse (spec.md §4.2).
func containsJunctionCrossing[K comparable](along []K, a, through, b K) bool {
	return collections.ContainsSubsequence(along, []K{a, through, b}) ||
		collections.ContainsSubsequence(along, []K{b, through, a})
}
