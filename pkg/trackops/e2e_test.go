package trackops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/trackgraph/pkg/division"
	"github.com/dd0wney/trackgraph/pkg/track"
)

// TestEndToEnd_SplitFeedsLiveDivision walks a small yard scenario across all
// three layers: a Track Graph carrying an occupying slice, a Division Graph
// watching it live, and an edge split performed through trackops midway
// through. It mirrors the teacher's e2e style of a single long narrative
// with require/assert checkpoints rather than one assertion per test.
func TestEndToEnd_SplitFeedsLiveDivision(t *testing.T) {
	feed := track.New[string]()
	require.True(t, mustOK(feed.AddEdge("a", "b", 10)), "AddEdge(a,b,10)")
	require.True(t, mustOK(feed.AddEdge("c", "b", 17)), "AddEdge(c,b,17)")
	require.True(t, mustOK(feed.Connect("a", "b", "c")), "Connect(a,b,c)")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	div := division.Construction(feed, ctx)

	pairs := collectPairs(div.LookupDivisionByEdge("a", "b"))
	assert.Len(t, pairs, 2, "division graph should see both edges before any split")

	require.True(t, feed.AddSlice("train-1", "b"), "AddSlice(train-1, b)")
	toC := func([]string) (string, bool) { return "c", true }
	require.Equal(t, 3, feed.ModifySlice("train-1", 1, 3, toC), "grow train-1 toward c")

	ops := New(feed)
	require.True(t, ops.SplitEdge("c", "b", 10, "q1"), "SplitEdge(c,b,10,q1)")

	pairsAfterSplit := collectPairs(div.LookupDivisionByEdge("a", "b"))
	assert.Len(t, pairsAfterSplit, 3, "splitting an edge should grow the division graph's edge count by one")

	sliceAfterSplit, ok := feed.LookupSlice("train-1")
	require.True(t, ok, "train-1 should survive the split")
	assert.Equal(t, []string{"b", "q1"}, sliceAfterSplit.Along, "train-1 should now route through the new node")

	require.True(t, div.AddDivision("b"), "AddDivision(b)")
	blocked := collectPairs(div.LookupDivisionByEdge("a", "b"))
	assert.Len(t, blocked, 1, "dividing b should isolate a-b from the rest of the yard")

	require.True(t, div.DeleteDivision("b"), "DeleteDivision(b)")
	restored := collectPairs(div.LookupDivisionByEdge("a", "b"))
	assert.Len(t, restored, 3, "undividing b should restore full reachability")
}

func mustOK(ok bool, err error) bool {
	return ok && err == nil
}

func collectPairs(it func(func(division.EdgePair[string]) bool)) []division.EdgePair[string] {
	var out []division.EdgePair[string]
	it(func(p division.EdgePair[string]) bool {
		out = append(out, p)
		return true
	})
	return out
}
