// Package collections holds the small pure containers the track graph is
// built from: a counting multiset, a symmetric pair map, and a subsequence
// search. None of them know anything about nodes, edges, or slices.
package collections

import "golang.org/x/exp/maps"

// Multiset is a count-bag over comparable keys. The track graph uses it to
// track, per edge and per node, how many slice anchors currently occupy
// that edge or node (spec.md §4.5's anchor-count accounting) — a plain set
// would collapse "one slice with both ends on this edge" into "one entry",
// which is exactly the case anchor counting exists to handle.
type Multiset[K comparable] struct {
	counts map[K]int
	total  int
}

// NewMultiset returns an empty Multiset.
func NewMultiset[K comparable]() *Multiset[K] {
	return &Multiset[K]{counts: make(map[K]int)}
}

// Add increments k's count and returns true (adding to a multiset always
// changes it, so the result is never false).
func (m *Multiset[K]) Add(k K) bool {
	m.counts[k]++
	m.total++
	return true
}

// Delete decrements k's count, removing the key entirely once it reaches
// zero. It reports whether k was present before the call.
func (m *Multiset[K]) Delete(k K) bool {
	n, ok := m.counts[k]
	if !ok || n == 0 {
		return false
	}
	if n == 1 {
		delete(m.counts, k)
	} else {
		m.counts[k] = n - 1
	}
	m.total--
	return true
}

// Count returns how many times k has been added net of deletions.
func (m *Multiset[K]) Count(k K) int {
	return m.counts[k]
}

// Total returns the sum of all counts.
func (m *Multiset[K]) Total() int {
	return m.total
}

// Uniques returns each key with a nonzero count, once.
func (m *Multiset[K]) Uniques() []K {
	return maps.Keys(m.counts)
}

// Keys lazily yields each key once per unit of its count, matching
// spec.md §4.1's "keys() (lazy sequence yielding each key once per count)".
func (m *Multiset[K]) Keys() func(func(K) bool) {
	return func(yield func(K) bool) {
		for k, n := range m.counts {
			for i := 0; i < n; i++ {
				if !yield(k) {
					return
				}
			}
		}
	}
}
