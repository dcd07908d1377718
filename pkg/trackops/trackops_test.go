package trackops

import (
	"testing"

	"github.com/dd0wney/trackgraph/pkg/track"
)

func slicesEqual[K comparable](a, b track.Slice[K]) bool {
	if a.Back != b.Back || a.Front != b.Front || a.Length != b.Length || len(a.Along) != len(b.Along) {
		return false
	}
	for i := range a.Along {
		if a.Along[i] != b.Along[i] {
			return false
		}
	}
	return true
}

func mustLookup(t *testing.T, g *track.Graph[string], id string) track.Slice[string] {
	t.Helper()
	s, ok := g.LookupSlice(id)
	if !ok {
		t.Fatalf("LookupSlice(%q): not found", id)
	}
	return s
}

// TestSplitEdge_S5 walks spec.md's worked splitEdge example end to end:
// two splits of an occupied edge, each re-materializing the surviving
// slice, ending in the exact described shape the spec names.
func TestSplitEdge_S5(t *testing.T) {
	g := track.New[string]()
	if ok, err := g.AddEdge("a", "b", 10); !ok || err != nil {
		t.Fatalf("AddEdge(a,b,10) = %v, %v", ok, err)
	}
	if ok, err := g.AddEdge("c", "b", 17); !ok || err != nil {
		t.Fatalf("AddEdge(c,b,17) = %v, %v", ok, err)
	}
	if ok, err := g.Connect("a", "b", "c"); !ok || err != nil {
		t.Fatalf("Connect(a,b,c) = %v, %v", ok, err)
	}

	if !g.AddSlice("1", "b") {
		t.Fatal("AddSlice(1,b) = false")
	}
	toC := func(candidates []string) (string, bool) { return "c", true }
	if grown := g.ModifySlice("1", 1, 3, toC); grown != 3 {
		t.Fatalf("initial grow toward c = %d, want 3", grown)
	}

	ops := New(g)

	if !ops.SplitEdge("c", "b", 10, "q1") {
		t.Fatal("SplitEdge(c,b,10,q1) = false")
	}
	if v, ok := g.LookupEdge("b", "q1"); !ok || v.Length != 7 {
		t.Fatalf("LookupEdge(b,q1) = %+v, %v; want length 7", v, ok)
	}
	if v, ok := g.LookupEdge("q1", "c"); !ok || v.Length != 10 {
		t.Fatalf("LookupEdge(q1,c) = %+v, %v; want length 10", v, ok)
	}

	if !ops.SplitEdge("b", "q1", 2, "q2") {
		t.Fatal("SplitEdge(b,q1,2,q2) = false")
	}
	if v, ok := g.LookupEdge("b", "q2"); !ok || v.Length != 2 {
		t.Fatalf("LookupEdge(b,q2) = %+v, %v; want length 2", v, ok)
	}
	if v, ok := g.LookupEdge("q2", "q1"); !ok || v.Length != 5 {
		t.Fatalf("LookupEdge(q2,q1) = %+v, %v; want length 5", v, ok)
	}

	got := mustLookup(t, g, "1")
	want := track.Slice[string]{Along: []string{"b", "q2", "q1"}, Back: 0, Front: 4, Length: 3}
	if !slicesEqual(got, want) {
		t.Fatalf("final lookupSlice(1) = %+v, want %+v", got, want)
	}
}

func TestSplitEdge_RejectsOutOfRangePosition(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("a", "b", 10)
	ops := New(g)

	if ops.SplitEdge("a", "b", 0, "q") {
		t.Error("SplitEdge at 0 = true, want false")
	}
	if ops.SplitEdge("a", "b", 10, "q") {
		t.Error("SplitEdge at length = true, want false")
	}
	if ops.SplitEdge("a", "b", 15, "q") {
		t.Error("SplitEdge past length = true, want false")
	}
}

func TestSplitEdge_MissingEdgeIsNoop(t *testing.T) {
	g := track.New[string]()
	ops := New(g)
	if ops.SplitEdge("a", "b", 5, "q") {
		t.Error("SplitEdge on missing edge = true, want false")
	}
}

// TestMoveSlice_HappyPath translates a slice forward along a single edge:
// grow the front by 5, compensate by shrinking the back by the same
// amount, leaving length unchanged but the occupied span shifted.
func TestMoveSlice_HappyPath(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("a", "b", 20)
	g.AddSlice("s", "a")
	if grown := g.ModifySlice("s", 1, 10, nil); grown != 10 {
		t.Fatalf("setup grow = %d, want 10", grown)
	}

	ops := New(g)
	if moved := ops.MoveSlice("s", 1, 5, nil); moved != 5 {
		t.Fatalf("MoveSlice = %d, want 5", moved)
	}

	got := mustLookup(t, g, "s")
	want := track.Slice[string]{Along: []string{"a", "b"}, Back: 5, Front: 5, Length: 10}
	if !slicesEqual(got, want) {
		t.Fatalf("after MoveSlice: %+v, want %+v", got, want)
	}
}

// TestMoveSlice_PanicsOnMismatch drives the compensating grow into a dead
// end (no through-connection past the terminal node), so it cannot apply
// the full magnitude the initial shrink freed. That disagreement is an
// internal inconsistency, not a caller error, so MoveSlice panics.
func TestMoveSlice_PanicsOnMismatch(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("a", "b", 10)
	g.AddSlice("s", "b")
	if grown := g.ModifySlice("s", 1, 10, nil); grown != 10 {
		t.Fatalf("setup grow = %d, want 10", grown)
	}

	ops := New(g)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MoveSlice did not panic")
		}
		if _, ok := r.(*track.InvariantError); !ok {
			t.Fatalf("panic value = %v, want *track.InvariantError", r)
		}
	}()
	ops.MoveSlice("s", -1, -3, nil)
}

func TestCloneSlice_MatchesShape(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("a", "b", 10)
	g.AddSlice("orig", "a")
	g.ModifySlice("orig", 1, 8, nil)
	if shrunk := g.ModifySlice("orig", -1, -3, nil); shrunk != -3 {
		t.Fatalf("setup shrink = %d, want -3", shrunk)
	}

	ops := New(g)
	if !ops.CloneSlice("orig", "clone") {
		t.Fatal("CloneSlice = false")
	}

	want := mustLookup(t, g, "orig")
	got := mustLookup(t, g, "clone")
	if !slicesEqual(got, want) {
		t.Fatalf("clone = %+v, want %+v", got, want)
	}
}

func TestCloneSlice_UnknownSourceIsNoop(t *testing.T) {
	g := track.New[string]()
	ops := New(g)
	if ops.CloneSlice("missing", "clone") {
		t.Error("CloneSlice(missing) = true, want false")
	}
	if _, ok := g.LookupSlice("clone"); ok {
		t.Error("clone should not have been created")
	}
}

func TestAddDescribedSlice_Point(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("a", "b", 10)
	ops := New(g)

	described := track.Slice[string]{Along: []string{"a"}, Back: 0, Front: 0, Length: 0}
	if !ops.AddDescribedSlice("p", described) {
		t.Fatal("AddDescribedSlice(point) = false")
	}
	got := mustLookup(t, g, "p")
	if !slicesEqual(got, described) {
		t.Fatalf("point slice = %+v, want %+v", got, described)
	}
}

func TestAddDescribedSlice_SingleEdgeNonzeroBack(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("a", "b", 10)
	ops := New(g)

	described := track.Slice[string]{Along: []string{"a", "b"}, Back: 3, Front: 2, Length: 5}
	if !ops.AddDescribedSlice("s", described) {
		t.Fatal("AddDescribedSlice = false")
	}
	got := mustLookup(t, g, "s")
	if !slicesEqual(got, described) {
		t.Fatalf("reconstructed = %+v, want %+v", got, described)
	}
}

// TestAddDescribedSlice_JunctionNeedsCursor seeds a hub with two outgoing
// edges, so growing past it requires the reconstruction cursor to steer
// toward the described path's next node rather than the other neighbour.
func TestAddDescribedSlice_JunctionNeedsCursor(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("h", "x", 5)
	g.AddEdge("h", "y", 7)
	ops := New(g)

	described := track.Slice[string]{Along: []string{"h", "y"}, Back: 0, Front: 3, Length: 4}
	if !ops.AddDescribedSlice("d", described) {
		t.Fatal("AddDescribedSlice = false")
	}
	got := mustLookup(t, g, "d")
	if !slicesEqual(got, described) {
		t.Fatalf("reconstructed = %+v, want %+v", got, described)
	}
}

func TestAddDescribedSlice_DuplicateIDFails(t *testing.T) {
	g := track.New[string]()
	g.AddEdge("a", "b", 10)
	g.AddSlice("dup", "a")
	ops := New(g)

	if ops.AddDescribedSlice("dup", track.Slice[string]{Along: []string{"a"}}) {
		t.Error("AddDescribedSlice with existing id = true, want false")
	}
}
