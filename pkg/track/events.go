package track

// EdgeChangeEvent is the wire shape for a topology mutation, emitted
// synchronously after the mutation commits (spec.md §5, §6). Length == 0
// denotes edge deletion; any positive Length denotes an edge addition of
// that length.
type EdgeChangeEvent[K comparable] struct {
	A, B   K
	Length int
}

// EdgeListener observes committed edge additions and deletions.
type EdgeListener[K comparable] func(EdgeChangeEvent[K])

// OnEdgeChange registers fn to be called, synchronously and in commit
// order, after every future AddEdge or DeleteEdge that changes topology. It
// returns an unsubscribe function; calling it more than once is a no-op,
// matching the idempotent-cancellation semantics spec.md §5 requires of the
// Division Graph's subscription.
//
// This is a direct callback list rather than the teacher's channel-based
// pkg/pubsub: pubsub's buffered, best-effort delivery would let an event be
// dropped or observed out of commit order, which spec.md §5's ordering
// guarantee does not allow. See DESIGN.md.
func (g *Graph[K]) OnEdgeChange(fn EdgeListener[K]) (unsubscribe func()) {
	id := g.nextListenerID
	g.nextListenerID++
	g.listeners = append(g.listeners, edgeListenerEntry[K]{id: id, fn: fn})

	unsubscribed := false
	return func() {
		if unsubscribed {
			return
		}
		unsubscribed = true
		for i, l := range g.listeners {
			if l.id == id {
				g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

func (g *Graph[K]) emitEdgeChange(a, b K, length int) {
	for _, l := range g.listeners {
		l.fn(EdgeChangeEvent[K]{A: a, B: b, Length: length})
	}
}
