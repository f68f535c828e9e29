package core

// Unfreeze converts this CsmGraph back into a mutable DynamicGraph,
// reconstructing the adjacency-list form from the CSR layout. It is
// O(V + E) and infallible: a CsmGraph can only have been built by
// Freeze, so its CSR structures are always internally consistent.
//
// The backward CSR block is discarded — DynamicGraph tracks only
// outgoing edges, the same as before any Freeze.
func (g *CsmGraph[N, W]) Unfreeze() *DynamicGraph[N, W] {
	numNodes := len(g.nodes)

	nodes := make([]slot[N], numNodes)
	for i, n := range g.nodes {
		nodes[i] = slot[N]{value: n, present: true}
	}

	edges := make([][]edgeEntry[W], numNodes)
	for i := 0; i < numNodes; i++ {
		targets, weights := g.forward.row(i)
		row := make([]edgeEntry[W], len(targets))
		for j := range targets {
			row[j] = edgeEntry[W]{target: targets[j], weight: weights[j]}
		}
		edges[i] = row
	}

	return &DynamicGraph[N, W]{
		nodes:     nodes,
		edges:     edges,
		rootIndex: g.rootIndex,
		hasRoot:   g.hasRoot,
	}
}
