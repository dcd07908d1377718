package trackops

import (
	"github.com/dd0wney/trackgraph/pkg/logging"
	"github.com/dd0wney/trackgraph/pkg/track"
)

// AddDescribedSlice reconstructs a slice matching described's shape under
// id: it seeds on described.Along[0], grows the front end through
// described.Along[1:] far enough to cover both the back offset and the
// body length in one pass, then retracts the back end by exactly
// described.Back — converting that leading span into the described back
// offset without disturbing the node sequence already laid down. Any
// shortfall during either step tears the slice back down and returns
// false, per spec.md §4.4.
func (o *Ops[K]) AddDescribedSlice(id string, described track.Slice[K]) bool {
	if len(described.Along) == 0 {
		return false
	}
	if !o.g.AddSlice(id, described.Along[0]) {
		return false
	}

	total := described.Back + described.Length
	if total > 0 {
		cursor := func(candidates []K) (K, bool) {
			sl, ok := o.g.LookupSlice(id)
			if !ok {
				var zero K
				return zero, false
			}
			idx := len(sl.Along)
			if idx >= len(described.Along) {
				var zero K
				return zero, false
			}
			return described.Along[idx], true
		}
		if grown := o.g.ModifySlice(id, 1, total, cursor); grown != total {
			o.g.DeleteSlice(id)
			return false
		}
	}

	if described.Back > 0 {
		if shrunk := o.g.ModifySlice(id, -1, -described.Back, nil); shrunk != -described.Back {
			o.g.DeleteSlice(id)
			return false
		}
	}

	o.logger.Debug("described slice reconstructed", logging.SliceID(id), logging.Count(len(described.Along)))
	return true
}

// CloneSlice reconstructs new as a copy of prev's current shape.
func (o *Ops[K]) CloneSlice(prev, newID string) bool {
	described, ok := o.g.LookupSlice(prev)
	if !ok {
		return false
	}
	return o.AddDescribedSlice(newID, described)
}

// MoveSlice translates slice id by modifying end by by, then modifying the
// opposite end by the negation of the amount actually applied — net
// movement without net length change. For positive by the compensating
// call is a shrink; for negative by it is a grow, made with no where
// callback. If the compensating call can't apply the exact magnitude, that
// is an internal inconsistency, not a user error: spec.md §4.4 calls this
// an invariant violation.
func (o *Ops[K]) MoveSlice(id string, end, by int, where track.WhereFunc[K]) int {
	moved := o.g.ModifySlice(id, end, by, where)
	if moved == 0 {
		return 0
	}
	compensate := o.g.ModifySlice(id, -end, -moved, nil)
	if compensate != -moved {
		panic(&track.InvariantError{Op: "MoveSlice", Message: "grow and compensating shrink amounts disagree"})
	}
	return moved
}

// SplitEdge splits the edge {a, b} at position at (negative values count
// back from length) into two edges (a, newNode) and (newNode, b) joined by
// a through-connection, re-materializing every slice that occupied the
// original edge onto the new topology. Through-connections at a and b that
// used the original edge are carried over to newNode. It returns false without mutating
// anything if {a, b} doesn't exist or at falls outside (0, length)
// (spec.md §4.4). The snapshot/re-add sequence is atomic from the caller's
// perspective: any intermediate failure restores the pre-split state.
func (o *Ops[K]) SplitEdge(a, b K, at int, newNode K) bool {
	view, ok := o.g.LookupEdge(a, b)
	if !ok {
		return false
	}
	length := view.Length
	pos := at
	if pos < 0 {
		pos = length + pos
	}
	if pos <= 0 || pos >= length {
		return false
	}
	lowLen, highLen := pos, length-pos

	type snapshot struct {
		id        string
		described track.Slice[K]
	}
	snapshots := make([]snapshot, 0, len(view.Slices))
	for _, id := range view.Slices {
		described, ok := o.g.LookupSlice(id)
		if !ok {
			continue
		}
		snapshots = append(snapshots, snapshot{id: id, described: described})
	}

	// DeleteEdge clears the through-links at a and b that use {a, b}; keep
	// them so they can be re-declared on the new edges or on rollback.
	throughA, throughB := o.g.LookupNode(a).Other[b], o.g.LookupNode(b).Other[a]
	reconnect := func(farA, farB K) {
		for _, x := range throughA {
			o.g.Connect(x, a, farA)
		}
		for _, x := range throughB {
			o.g.Connect(x, b, farB)
		}
	}

	restoreOriginal := func() bool {
		for _, s := range snapshots {
			o.g.DeleteSlice(s.id)
		}
		o.g.DeleteEdge(a, newNode)
		o.g.DeleteEdge(newNode, b)
		o.g.AddEdge(a, b, length)
		reconnect(b, a)
		for _, s := range snapshots {
			o.AddDescribedSlice(s.id, s.described)
		}
		return false
	}

	for _, s := range snapshots {
		o.g.DeleteSlice(s.id)
	}
	if !o.g.DeleteEdge(a, b) {
		return restoreOriginal()
	}

	okLow, _ := o.g.AddEdge(a, newNode, lowLen)
	okHigh, _ := o.g.AddEdge(newNode, b, highLen)
	okConnect, _ := o.g.Connect(a, newNode, b)
	if !okLow || !okHigh || !okConnect {
		return restoreOriginal()
	}
	reconnect(newNode, newNode)

	for _, s := range snapshots {
		patched := patchAlong(s.described, a, b, newNode, lowLen, highLen)
		if !o.AddDescribedSlice(s.id, patched) {
			return restoreOriginal()
		}
	}

	o.logger.Debug("edge split", logging.EdgeKey(a, b), logging.NodeKey(newNode), logging.Delta(pos))
	return true
}

// patchAlong inserts newNode between any consecutive [a,b] or [b,a] pair in
// described.Along, and — if the resulting first or last edge is shorter
// than the slice's terminal offset on that end — shrinks the offset and
// drops the terminal node, per spec.md §4.4.
func patchAlong[K comparable](s track.Slice[K], a, b, newNode K, lowLen, highLen int) track.Slice[K] {
	orig := s.Along
	patched := make([]K, 0, len(orig)+1)
	insertedAt := -1
	for i, n := range orig {
		patched = append(patched, n)
		if i+1 < len(orig) {
			cur, next := orig[i], orig[i+1]
			if (cur == a && next == b) || (cur == b && next == a) {
				patched = append(patched, newNode)
				insertedAt = len(patched) - 1
			}
		}
	}
	if insertedAt < 0 {
		return track.Slice[K]{Along: patched, Back: s.Back, Front: s.Front, Length: s.Length}
	}

	newLenFor := func(terminal K) int {
		if terminal == a {
			return lowLen
		}
		return highLen
	}

	back, front := s.Back, s.Front
	dropBack, dropFront := false, false

	if insertedAt == 1 {
		if l := newLenFor(patched[0]); back >= l {
			back -= l
			dropBack = true
		}
	}
	if insertedAt == len(patched)-2 {
		if l := newLenFor(patched[len(patched)-1]); front >= l {
			front -= l
			dropFront = true
		}
	}

	if dropBack {
		patched = patched[1:]
	}
	if dropFront {
		patched = patched[:len(patched)-1]
	}

	return track.Slice[K]{Along: patched, Back: back, Front: front, Length: s.Length}
}
