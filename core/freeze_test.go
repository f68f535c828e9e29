package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborio-graphs/nextgraph/core"
)

// TestFreeze_EmptyGraph checks that freezing a graph with no nodes
// yields a valid, empty CsmGraph rather than a panic or nil.
func TestFreeze_EmptyGraph(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	csm := g.Freeze()

	assert.Equal(t, 0, csm.NumberNodes())
	assert.Equal(t, 0, csm.NumberEdges())
	assert.False(t, csm.ContainsRootNode())
}

// TestFreeze_AllTombstoned checks that a graph whose every node was
// removed freezes to the same empty shape as a never-populated graph.
func TestFreeze_AllTombstoned(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	require.NoError(t, g.RemoveNode(a))
	require.NoError(t, g.RemoveNode(b))

	csm := g.Freeze()
	assert.Equal(t, 0, csm.NumberNodes())
}

// TestFreeze_CompactsTombstonesAndDanglingEdges checks that removed
// nodes disappear and any edge that pointed at or from them is dropped,
// not merely hidden.
func TestFreeze_CompactsTombstonesAndDanglingEdges(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 2))
	require.NoError(t, g.RemoveNode(b))

	csm := g.Freeze()
	assert.Equal(t, 2, csm.NumberNodes())
	assert.Equal(t, 0, csm.NumberEdges())
}

// TestFreeze_RemapsRootIndex checks that the root survives
// compaction at its new, possibly different, index.
func TestFreeze_RemapsRootIndex(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	dead := g.AddNode("dead")
	root := g.AddRootNode("root")
	require.NoError(t, g.RemoveNode(dead))

	csm := g.Freeze()
	idx, ok := csm.GetRootIndex()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	payload, _ := csm.GetRootNode()
	assert.Equal(t, "root", payload)
	_ = root
}

// TestFreeze_RootLostWhenTombstoned checks that if the designated
// root was itself removed before Freeze, the frozen graph has no root.
func TestFreeze_RootLostWhenTombstoned(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	root := g.AddRootNode("root")
	require.NoError(t, g.RemoveNode(root))

	csm := g.Freeze()
	assert.False(t, csm.ContainsRootNode())
}

// TestFreeze_LargeRowUsesCountingSortPath checks that a row well
// past the counting-sort threshold still comes back correctly sorted,
// exercising sortRowByCounting rather than the comparison-sort path.
func TestFreeze_LargeRowUsesCountingSortPath(t *testing.T) {
	g := core.NewDynamicGraph[int, int]()
	src := g.AddNode(0)
	const n = 300
	targets := make([]int, n)
	for i := 0; i < n; i++ {
		targets[i] = g.AddNode(i)
	}
	// Insert in reverse order so the row starts maximally unsorted.
	for i := n - 1; i >= 0; i-- {
		require.NoError(t, g.AddEdge(src, targets[i], i))
	}

	csm := g.Freeze()
	edges, ok := csm.GetEdges(src)
	require.True(t, ok)
	require.Len(t, edges, n)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].Target, edges[i].Target)
	}
}

// TestFreeze_DiamondWithRemovedBranch removes one branch of a diamond
// before freezing and checks the survivors' remapped indices and edges:
// A,B,C,D with A->B, A->C, B->D, C->D, minus B, compacts to A=0, C=1,
// D=2 with exactly the edges 0->1 and 1->2.
func TestFreeze_DiamondWithRemovedBranch(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	d := g.AddNode("D")
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(a, c, 1))
	require.NoError(t, g.AddEdge(b, d, 1))
	require.NoError(t, g.AddEdge(c, d, 1))
	require.NoError(t, g.RemoveNode(b))

	csm := g.Freeze()
	require.Equal(t, 3, csm.NumberNodes())
	require.Equal(t, 2, csm.NumberEdges())

	for i, want := range []string{"A", "C", "D"} {
		payload, ok := csm.GetNode(i)
		require.True(t, ok)
		assert.Equal(t, want, payload)
	}
	assert.True(t, csm.ContainsEdge(0, 1))
	assert.True(t, csm.ContainsEdge(1, 2))
	assert.False(t, csm.ContainsEdge(0, 2))
}

// TestFreeze_ParallelEdgesPreservedAsBag checks that duplicate a->b
// edges survive Freeze with their weights intact as a multiset, even
// though their relative order is unspecified.
func TestFreeze_ParallelEdgesPreservedAsBag(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	require.NoError(t, g.AddEdge(a, b, 10))
	require.NoError(t, g.AddEdge(a, b, 15))
	require.NoError(t, g.AddEdge(a, c, 20))

	csm := g.Freeze()
	assert.Equal(t, 3, csm.NumberEdges())

	edges, ok := csm.GetEdges(a)
	require.True(t, ok)
	require.Len(t, edges, 3)

	targetCounts := make(map[int]int)
	weightCounts := make(map[int]int)
	for _, e := range edges {
		targetCounts[e.Target]++
		weightCounts[*e.Weight]++
	}
	assert.Equal(t, map[int]int{b: 2, c: 1}, targetCounts)
	assert.Equal(t, map[int]int{10: 1, 15: 1, 20: 1}, weightCounts)
}

// TestFreezeUnfreeze_RoundTrip checks that Unfreeze(Freeze(g)) is
// observationally equivalent to g for node payloads, root designation,
// and edge membership (not insertion order, which Freeze does not
// preserve).
func TestFreezeUnfreeze_RoundTrip(t *testing.T) {
	g := core.NewDynamicGraph[string, int]()
	a := g.AddRootNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 2))
	require.NoError(t, g.AddEdge(c, a, 3))

	roundTripped := g.Freeze().Unfreeze()

	assert.Equal(t, g.NumberNodes(), roundTripped.NumberNodes())
	assert.Equal(t, g.NumberEdges(), roundTripped.NumberEdges())
	for _, pair := range [][2]int{{a, b}, {b, c}, {c, a}} {
		assert.Equal(t, g.ContainsEdge(pair[0], pair[1]), roundTripped.ContainsEdge(pair[0], pair[1]))
	}
	origRoot, _ := g.GetRootNode()
	rtRoot, _ := roundTripped.GetRootNode()
	if diff := cmp.Diff(origRoot, rtRoot); diff != "" {
		t.Errorf("root payload mismatch after round trip (-orig +roundtrip):\n%s", diff)
	}
}
