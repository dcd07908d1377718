package collections

// unordered is the stored key for an unordered pair {A, B}: the two
// endpoints in the order the pair was first inserted. Lookups probe both
// orders (see keyFor), so equal pairs given in either order find the same
// map slot.
type unordered[K comparable] struct {
	a, b K
}

// PairMap is a map keyed by unordered pairs of K, used by the track graph's
// through-link relation (two node ids are "connected" or not, symmetrically)
// and by the division graph's edge-token bookkeeping. Because K need not be
// ordered, the canonical form isn't a sort — it's "store the pair exactly as
// first inserted and look up both orderings".
type PairMap[K comparable, V any] struct {
	entries map[unordered[K]]V
	partner map[K]map[K]struct{} // a -> set of b it has a pair with
}

// NewPairMap returns an empty PairMap.
func NewPairMap[K comparable, V any]() *PairMap[K, V] {
	return &PairMap[K, V]{
		entries: make(map[unordered[K]]V),
		partner: make(map[K]map[K]struct{}),
	}
}

func (p *PairMap[K, V]) keyFor(a, b K) (unordered[K], bool) {
	if k := (unordered[K]{a, b}); p.has(k) {
		return k, true
	}
	if k := (unordered[K]{b, a}); p.has(k) {
		return k, true
	}
	return unordered[K]{a, b}, false
}

func (p *PairMap[K, V]) has(k unordered[K]) bool {
	_, ok := p.entries[k]
	return ok
}

// Set records v for the unordered pair {a, b}, symmetrically: Get(a, b)
// and Get(b, a) afterwards return the same value.
func (p *PairMap[K, V]) Set(a, b K, v V) {
	k, existed := p.keyFor(a, b)
	p.entries[k] = v
	if existed {
		return
	}

	if p.partner[a] == nil {
		p.partner[a] = make(map[K]struct{})
	}
	p.partner[a][b] = struct{}{}
	if p.partner[b] == nil {
		p.partner[b] = make(map[K]struct{})
	}
	p.partner[b][a] = struct{}{}
}

// Get returns the value recorded for {a, b} in either order.
func (p *PairMap[K, V]) Get(a, b K) (V, bool) {
	k, ok := p.keyFor(a, b)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := p.entries[k]
	return v, ok
}

// Delete removes the entry for {a, b}, reporting whether it was present.
func (p *PairMap[K, V]) Delete(a, b K) bool {
	k, ok := p.keyFor(a, b)
	if !ok {
		return false
	}
	delete(p.entries, k)

	if s := p.partner[a]; s != nil {
		delete(s, b)
		if len(s) == 0 {
			delete(p.partner, a)
		}
	}
	if s := p.partner[b]; s != nil {
		delete(s, a)
		if len(s) == 0 {
			delete(p.partner, b)
		}
	}
	return true
}

// OtherEntries yields (b, v) for every partner b of a.
func (p *PairMap[K, V]) OtherEntries(a K) func(func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for b := range p.partner[a] {
			v, ok := p.Get(a, b)
			if !ok {
				continue
			}
			if !yield(b, v) {
				return
			}
		}
	}
}

// PairsWith counts how many partners a has.
func (p *PairMap[K, V]) PairsWith(a K) int {
	return len(p.partner[a])
}

// Pair is one unordered {A, B} entry as yielded by All.
type Pair[K comparable, V any] struct {
	A, B K
	V    V
}

// All yields every recorded pair exactly once, in no particular order.
func (p *PairMap[K, V]) All() func(func(Pair[K, V]) bool) {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range p.entries {
			if !yield(Pair[K, V]{A: k.a, B: k.b, V: v}) {
				return
			}
		}
	}
}
