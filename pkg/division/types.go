// Package division implements C7, the Division Graph: edge-level
// connectivity over a Track Graph that respects blocked ("divided") nodes.
//
// It is built entirely on top of C6 (pkg/component) using the edge-as-node
// trick spec.md §9 describes: every track edge gets a synthetic edge-token
// key, wired to its two endpoint node-keys inside the component graph.
// Blocking a node removes that node's pairings to its incident edge-tokens;
// unblocking restores them. Reachability between edge-tokens under this
// reduced graph is exactly edge-level connectivity that skips blocked
// nodes.
package division

import (
	"github.com/dd0wney/trackgraph/pkg/logging"
	"github.com/dd0wney/trackgraph/pkg/metrics"
)

// DivisionKey is the sum-type key over the abstract universe the underlying
// component graph operates on: either an original track node key, or a
// synthetic edge-token minted for one track edge. IsToken discriminates the
// two cases; Node and Token are zero-valued on the side not in use, so two
// DivisionKeys never collide across the node/token subspaces regardless of
// what K is or what a caller's token-shaped strings happen to look like.
type DivisionKey[K comparable] struct {
	Node    K
	Token   string
	IsToken bool
}

func nodeKey[K comparable](k K) DivisionKey[K] {
	return DivisionKey[K]{Node: k}
}

func tokenKey[K comparable](tok string) DivisionKey[K] {
	return DivisionKey[K]{Token: tok, IsToken: true}
}

// EdgePair is one {A, B} endpoint pair as yielded by LookupDivisionByEdge.
type EdgePair[K comparable] struct {
	A, B K
}

// Config configures a Graph's optional ambient dependencies. The zero value
// is valid: a nop logger and no metrics.
type Config struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
}
