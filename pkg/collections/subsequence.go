package collections

// ContainsSubsequence reports whether want appears as a contiguous run
// inside along, used by track.Graph.Disconnect to refuse severing a
// through-link a slice is actually using (spec.md §4.2: refuse disconnect
// if any slice's along contains [a, through, b] or [b, through, a]).
func ContainsSubsequence[K comparable](along, want []K) bool {
	if len(want) == 0 {
		return true
	}
	if len(want) > len(along) {
		return false
	}

	for start := 0; start+len(want) <= len(along); start++ {
		match := true
		for i, w := range want {
			if along[start+i] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
