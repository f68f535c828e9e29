package core

// IsFrozen is always false for DynamicGraph by definition.
func (g *DynamicGraph[N, W]) IsFrozen() bool { return false }

// ContainsNode reports whether index is in range and not tombstoned.
func (g *DynamicGraph[N, W]) ContainsNode(index int) bool {
	return index >= 0 && index < len(g.nodes) && g.nodes[index].present
}

// GetNode returns the payload at index, or the zero value and false if
// index is out of range or tombstoned.
func (g *DynamicGraph[N, W]) GetNode(index int) (N, bool) {
	if !g.ContainsNode(index) {
		var zero N
		return zero, false
	}
	return g.nodes[index].value, true
}

// NumberNodes is O(V): it must skip tombstoned slots, unlike CsmGraph's
// O(1) count, because DynamicGraph never compacts on removal.
func (g *DynamicGraph[N, W]) NumberNodes() int {
	n := 0
	for _, s := range g.nodes {
		if s.present {
			n++
		}
	}
	return n
}

// ContainsEdge reports whether an edge a->b is present. It does not
// require b to still be a live node: RemoveNode tombstones without
// purging incoming edges, so stale edges into a removed node can exist
// until the next Freeze compacts them away.
func (g *DynamicGraph[N, W]) ContainsEdge(a, b int) bool {
	if a < 0 || a >= len(g.edges) {
		return false
	}
	for _, e := range g.edges[a] {
		if e.target == b {
			return true
		}
	}
	return false
}

// NumberEdges is O(V): it sums every row's length.
func (g *DynamicGraph[N, W]) NumberEdges() int {
	n := 0
	for _, row := range g.edges {
		n += len(row)
	}
	return n
}

// GetEdges returns src's outgoing (target, weight) pairs in insertion
// order, or ok=false if src is out of range.
func (g *DynamicGraph[N, W]) GetEdges(src int) ([]EdgeRef[W], bool) {
	if src < 0 || src >= len(g.edges) {
		return nil, false
	}
	row := g.edges[src]
	out := make([]EdgeRef[W], len(row))
	for i := range row {
		out[i] = EdgeRef[W]{Target: row[i].target, Weight: &row[i].weight}
	}
	return out, true
}

// ContainsRootNode reports whether a root has been designated and that
// node has not since been tombstoned.
func (g *DynamicGraph[N, W]) ContainsRootNode() bool {
	return g.hasRoot && g.ContainsNode(g.rootIndex)
}

// GetRootNode returns the root's payload, if any and still live.
func (g *DynamicGraph[N, W]) GetRootNode() (N, bool) {
	if !g.ContainsRootNode() {
		var zero N
		return zero, false
	}
	return g.nodes[g.rootIndex].value, true
}

// GetRootIndex returns the root's index, if any and still live.
func (g *DynamicGraph[N, W]) GetRootIndex() (int, bool) {
	if !g.ContainsRootNode() {
		return 0, false
	}
	return g.rootIndex, true
}
