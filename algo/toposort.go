package algo

import "github.com/arborio-graphs/nextgraph/core"

// TopologicalSort computes a topological ordering via Kahn's algorithm.
// An empty graph sorts to an empty, non-nil slice. ok is false if and
// only if the graph contains a cycle, in which case the returned slice
// is nil.
func TopologicalSort[N, W any](g *core.CsmGraph[N, W]) ([]int, bool) {
	numNodes := g.NumberNodes()
	if numNodes == 0 {
		return []int{}, true
	}

	// 1. Compute in-degrees by walking every node's outbound row once —
	// more cache-friendly than calling InboundEdges per node.
	inDegree := make([]int, numNodes)
	for i := 0; i < numNodes; i++ {
		seq, err := g.OutboundEdges(i)
		if err != nil {
			continue
		}
		for neighbor := range seq {
			inDegree[neighbor]++
		}
	}

	// 2. Seed the queue with every zero-in-degree node.
	queue := make([]int, 0, numNodes)
	for i := 0; i < numNodes; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	// 3. Drain the queue, decrementing downstream in-degrees.
	sorted := make([]int, 0, numNodes)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		sorted = append(sorted, u)

		seq, err := g.OutboundEdges(u)
		if err != nil {
			continue
		}
		for v := range seq {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	// 4. A complete sort visited every node; a short one means a cycle
	// starved the queue of new zero-in-degree nodes.
	if len(sorted) != numNodes {
		return nil, false
	}
	return sorted, true
}

// HasCycle reports whether the graph contains any directed cycle. It is
// defined purely in terms of TopologicalSort's success: a sort that
// stalls before visiting every node has found a cycle.
func HasCycle[N, W any](g *core.CsmGraph[N, W]) bool {
	_, ok := TopologicalSort(g)
	return !ok
}
