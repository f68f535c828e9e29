package core

// AddNode appends a new node and returns its index. Amortized O(1): the
// backing slices grow the way append always does.
func (g *DynamicGraph[N, W]) AddNode(payload N) int {
	g.nodes = append(g.nodes, slot[N]{value: payload, present: true})
	g.edges = append(g.edges, make([]edgeEntry[W], 0, g.outDegreeHint))
	return len(g.nodes) - 1
}

// UpdateNode replaces the payload of an existing, non-tombstoned node.
func (g *DynamicGraph[N, W]) UpdateNode(index int, payload N) error {
	if !g.ContainsNode(index) {
		return NewNodeNotFound(index)
	}
	g.nodes[index].value = payload
	return nil
}

// AddEdge appends a directed edge a->b. Both endpoints must be present,
// live nodes; duplicates are allowed (this library does not deduplicate
// multi-edges on insert).
func (g *DynamicGraph[N, W]) AddEdge(a, b int, weight W) error {
	if !g.ContainsNode(a) || !g.ContainsNode(b) {
		return NewEdgeCreationError(a, b)
	}
	g.edges[a] = append(g.edges[a], edgeEntry[W]{target: b, weight: weight})
	return nil
}

// RemoveEdge removes the first a->b edge found in a's row, preserving
// the relative order of the rest. An out-of-range or tombstoned source
// reports NodeNotFound; a live source with no matching edge reports
// EdgeNotFoundError. The target b is never checked for liveness — a
// dangling edge into a tombstoned node is still removable.
func (g *DynamicGraph[N, W]) RemoveEdge(a, b int) error {
	if !g.ContainsNode(a) {
		return NewNodeNotFound(a)
	}
	row := g.edges[a]
	for i, e := range row {
		if e.target == b {
			g.edges[a] = append(row[:i], row[i+1:]...)
			return nil
		}
	}
	return NewEdgeNotFoundError(a, b)
}

// RemoveNode tombstones index: it stops counting toward NumberNodes and
// ContainsNode becomes false, but its slot and any edges pointing at it
// from other nodes are left in place. The node's own outgoing edges are
// dropped, since they can no longer be traversed from a dead source.
// Freeze is what actually purges tombstones and dangling edges.
func (g *DynamicGraph[N, W]) RemoveNode(index int) error {
	if !g.ContainsNode(index) {
		return NewNodeNotFound(index)
	}
	var zero N
	g.nodes[index] = slot[N]{value: zero, present: false}
	g.edges[index] = nil
	return nil
}

// AddRootNode appends a new node and designates it the root, replacing
// whatever root designation existed before. The previous root node, if
// any, is left in the graph unchanged — only the designation moves.
func (g *DynamicGraph[N, W]) AddRootNode(payload N) int {
	index := g.AddNode(payload)
	g.rootIndex = index
	g.hasRoot = true
	return index
}

// Clear empties the graph back to its construction-time state: no
// nodes, no edges, no root.
func (g *DynamicGraph[N, W]) Clear() {
	g.nodes = g.nodes[:0]
	g.edges = g.edges[:0]
	g.rootIndex = 0
	g.hasRoot = false
}
