package division

import (
	"context"

	"github.com/google/uuid"

	"github.com/dd0wney/trackgraph/pkg/collections"
	"github.com/dd0wney/trackgraph/pkg/component"
	"github.com/dd0wney/trackgraph/pkg/logging"
	"github.com/dd0wney/trackgraph/pkg/metrics"
	"github.com/dd0wney/trackgraph/pkg/track"
)

// Graph is the Division Graph (C7). It holds only a borrow of the Track
// Graph's edge-change feed; once its construction context is cancelled the
// borrow is released and the Graph becomes permanently inert (spec.md §5).
type Graph[K comparable] struct {
	comp *component.Graph[DivisionKey[K]]

	tokens     *collections.PairMap[K, string]
	endpoints  map[string]EdgePair[K]
	nodeTokens map[K]map[string]struct{}
	blocked    map[K]bool

	ctx         context.Context
	unsubscribe func()
	torn        bool

	logger  logging.Logger
	metrics *metrics.Registry
}

// Construction replays feed's existing edges, subscribes to its edge-change
// feed, and returns a Graph tracking edge-level connectivity from that
// point on. ctx is a single-shot cancellation handle (spec.md §5): once
// cancelled, the subscription is dropped and every subsequent call is a
// no-op.
func Construction[K comparable](feed *track.Graph[K], ctx context.Context) *Graph[K] {
	return ConstructionWithConfig(feed, ctx, Config{})
}

// ConstructionWithConfig is Construction with explicit ambient dependencies.
func ConstructionWithConfig[K comparable](feed *track.Graph[K], ctx context.Context, cfg Config) *Graph[K] {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	g := &Graph[K]{
		comp:       component.New[DivisionKey[K]](),
		tokens:     collections.NewPairMap[K, string](),
		endpoints:  make(map[string]EdgePair[K]),
		nodeTokens: make(map[K]map[string]struct{}),
		blocked:    make(map[K]bool),
		ctx:        ctx,
		logger:     logger,
		metrics:    cfg.Metrics,
	}

	for view := range feed.Edges() {
		g.addEdgeToken(view.Low, view.High)
	}
	g.unsubscribe = feed.OnEdgeChange(g.handleEdgeChange)

	return g
}

func (g *Graph[K]) handleEdgeChange(ev track.EdgeChangeEvent[K]) {
	if g.checkCancelled() {
		return
	}
	if ev.Length > 0 {
		g.addEdgeToken(ev.A, ev.B)
	} else {
		g.removeEdgeToken(ev.A, ev.B)
	}
}

// checkCancelled reports whether ctx has fired, tearing the subscription
// down exactly once the first time it observes cancellation. There is no
// background goroutine watching ctx.Done() the way the teacher's
// pubsub.Subscription does: spec.md §5 rules out concurrent mutation of a
// Graph, so cancellation is instead polled cooperatively at the top of
// every public entry point and inside the event handler itself, both of
// which already run on the caller's own goroutine.
func (g *Graph[K]) checkCancelled() bool {
	if g.torn {
		return true
	}
	select {
	case <-g.ctx.Done():
		g.teardown()
		return true
	default:
		return false
	}
}

func (g *Graph[K]) teardown() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	g.torn = true
}

func (g *Graph[K]) addEdgeToken(a, b K) {
	if _, exists := g.tokens.Get(a, b); exists {
		return
	}
	tok := uuid.NewString()
	g.tokens.Set(a, b, tok)
	g.endpoints[tok] = EdgePair[K]{A: a, B: b}
	g.indexToken(a, tok)
	g.indexToken(b, tok)

	if !g.blocked[a] {
		g.comp.Add(nodeKey(a), tokenKey[K](tok))
	}
	if !g.blocked[b] {
		g.comp.Add(nodeKey(b), tokenKey[K](tok))
	}
}

func (g *Graph[K]) removeEdgeToken(a, b K) {
	tok, ok := g.tokens.Get(a, b)
	if !ok {
		return
	}
	g.comp.Delete(nodeKey(a), tokenKey[K](tok))
	g.comp.Delete(nodeKey(b), tokenKey[K](tok))
	g.tokens.Delete(a, b)
	delete(g.endpoints, tok)
	g.deindexToken(a, tok)
	g.deindexToken(b, tok)
}

func (g *Graph[K]) indexToken(k K, tok string) {
	if g.nodeTokens[k] == nil {
		g.nodeTokens[k] = make(map[string]struct{})
	}
	g.nodeTokens[k][tok] = struct{}{}
}

func (g *Graph[K]) deindexToken(k K, tok string) {
	set := g.nodeTokens[k]
	if set == nil {
		return
	}
	delete(set, tok)
	if len(set) == 0 {
		delete(g.nodeTokens, k)
	}
}

// AddDivision blocks node at, severing Division-Graph reachability through
// it while leaving the underlying Track Graph topology untouched. It
// returns false if at is already blocked, or if the Division Graph has been
// torn down.
func (g *Graph[K]) AddDivision(at K) bool {
	if g.checkCancelled() {
		return false
	}
	if g.blocked[at] {
		return false
	}
	g.blocked[at] = true
	for tok := range g.nodeTokens[at] {
		g.comp.Delete(nodeKey(at), tokenKey[K](tok))
	}

	g.metrics.RecordDivisionBlock(len(g.blocked))
	g.logger.Debug("division added", logging.Division(at))
	return true
}

// DeleteDivision unblocks node at, restoring the pairings AddDivision
// removed. It returns false if at is not currently blocked, or if the
// Division Graph has been torn down.
func (g *Graph[K]) DeleteDivision(at K) bool {
	if g.checkCancelled() {
		return false
	}
	if !g.blocked[at] {
		return false
	}
	delete(g.blocked, at)
	for tok := range g.nodeTokens[at] {
		g.comp.Add(nodeKey(at), tokenKey[K](tok))
	}

	g.metrics.RecordDivisionUnblock(len(g.blocked))
	g.logger.Debug("division removed", logging.Division(at))
	return true
}

// LookupDivisionByEdge looks up the edge-token for {a, b} and yields the
// endpoint pair of every edge-token reachable from it under the current
// blocked-node set, including {a, b} itself. It yields nothing if {a, b}
// has no edge-token, or the Division Graph has been torn down.
func (g *Graph[K]) LookupDivisionByEdge(a, b K) func(func(EdgePair[K]) bool) {
	if g.checkCancelled() {
		return func(func(EdgePair[K]) bool) {}
	}
	tok, ok := g.tokens.Get(a, b)
	if !ok {
		return func(func(EdgePair[K]) bool) {}
	}

	return func(yield func(EdgePair[K]) bool) {
		for m := range g.comp.SharedWith(tokenKey[K](tok)) {
			if !m.IsToken {
				continue
			}
			pair, ok := g.endpoints[m.Token]
			if !ok {
				continue
			}
			if !yield(pair) {
				return
			}
		}
	}
}
