package core

import "sort"

// IsFrozen is always true for CsmGraph by definition.
func (g *CsmGraph[N, W]) IsFrozen() bool { return true }

// ContainsNode is a bounds check: the node list is compact by
// construction, so there are no tombstones to skip.
func (g *CsmGraph[N, W]) ContainsNode(index int) bool {
	return index >= 0 && index < len(g.nodes)
}

// GetNode returns the payload at index, or the zero value and false if
// index is out of range.
func (g *CsmGraph[N, W]) GetNode(index int) (N, bool) {
	if !g.ContainsNode(index) {
		var zero N
		return zero, false
	}
	return g.nodes[index], true
}

// NumberNodes is O(1): the node list is already compact.
func (g *CsmGraph[N, W]) NumberNodes() int { return len(g.nodes) }

// ContainsEdge reports whether a->b exists, using a linear scan below
// binarySearchThreshold neighbors and a binary search at or above it —
// valid only because Freeze leaves every row sorted ascending by target.
func (g *CsmGraph[N, W]) ContainsEdge(a, b int) bool {
	if !g.ContainsNode(a) {
		return false
	}
	targets, _ := g.forward.row(a)
	if len(targets) < binarySearchThreshold {
		for _, t := range targets {
			if t == b {
				return true
			}
		}
		return false
	}
	i := sort.SearchInts(targets, b)
	return i < len(targets) && targets[i] == b
}

// NumberEdges is O(1): it's just the shared length of the forward
// targets/weights slices.
func (g *CsmGraph[N, W]) NumberEdges() int { return len(g.forward.targets) }

// GetEdges returns src's outgoing (target, weight) pairs in sorted
// order, or ok=false if src is out of range.
func (g *CsmGraph[N, W]) GetEdges(src int) ([]EdgeRef[W], bool) {
	if !g.ContainsNode(src) {
		return nil, false
	}
	targets, weights := g.forward.row(src)
	out := make([]EdgeRef[W], len(targets))
	for i := range targets {
		out[i] = EdgeRef[W]{Target: targets[i], Weight: &weights[i]}
	}
	return out, true
}

// ContainsRootNode reports whether a root has been designated.
func (g *CsmGraph[N, W]) ContainsRootNode() bool { return g.hasRoot }

// GetRootNode returns the root's payload, if any.
func (g *CsmGraph[N, W]) GetRootNode() (N, bool) {
	if !g.hasRoot {
		var zero N
		return zero, false
	}
	return g.nodes[g.rootIndex], true
}

// GetRootIndex returns the root's index, if any.
func (g *CsmGraph[N, W]) GetRootIndex() (int, bool) {
	if !g.hasRoot {
		return 0, false
	}
	return g.rootIndex, true
}

// FindNode scans nodes in index order and returns the first one pred
// accepts. It is not part of the GraphView interface; DynamicGraph.FindNode
// is its counterpart on the mutable form.
func (g *CsmGraph[N, W]) FindNode(pred func(index int, payload N) bool) (int, N, bool) {
	for i, n := range g.nodes {
		if pred(i, n) {
			return i, n, true
		}
	}
	var zero N
	return 0, zero, false
}
